package get_calendar

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

const msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (опционально, YYYY-MM; по умолчанию текущий)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var month time.Time

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.ParseInLocation(domain.MonthFormat, m, time.Local)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	result := h.service.Calendar(month)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
