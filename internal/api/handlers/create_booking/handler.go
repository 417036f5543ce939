package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgCapacityExceeded   = "недостаточно свободных мест в выбранном слоте"
	msgInvalidBookingDate = "бронирование возможно только начиная с завтрашнего дня"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSessionNotFound    = "сессия не найдена"
)

type Handler struct {
	useCase  CreateBookingUseCase
	sessions SessionStore
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, sessions SessionStore, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Членство берется из сессии, если она указана
	isMember := req.IsMember
	if req.SessionID != nil {
		s, err := h.sessions.Get(*req.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				h.logger.Warn("POST /bookings - Session not found: session_id=%s", *req.SessionID)
				handlers.RespondNotFound(w, msgSessionNotFound)
				return
			}
			h.logger.Error("POST /bookings - Failed to get session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		isMember = s.IsMember
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(isMember)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: type=%s, date=%s, slot=%s", req.Type, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: slot=%s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: type=%s, date=%s, error=%v", req.Type, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, type=%s", result.ID, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
