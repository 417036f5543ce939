package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate  = "дата обязательна"
	msgMissingType  = "тип ресурса обязателен"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), type (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	typeStr := query.Get("type")
	if typeStr == "" {
		h.logger.Warn("GET /available-slots - Missing type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, typeStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, type=%s, error=%v", dateStr, typeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, type=%s, slots_count=%d",
		dateStr, typeStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
