package list_bookings

import (
	"net/http"

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

// Handle GET /api/v1/bookings
// Бронирования по возрастанию даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
