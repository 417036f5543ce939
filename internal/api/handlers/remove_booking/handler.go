package remove_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Повторное удаление возвращает 200 с removed=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Remove(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("DELETE /bookings/{id} - Failed to remove booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Remove processed: booking_id=%s, removed=%t", bookingID, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
