package sessions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "сессия не найдена"
)

type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Create POST /api/v1/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.registry.Create()
	handlers.RespondJSON(w, http.StatusCreated, FromSession(s))
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	s, err := h.registry.Get(sessionID)
	if err != nil {
		h.respondError(w, "GET", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}

// Update PUT /api/v1/sessions/{sessionId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Парсим дату до изменения состояния, чтобы не применять запрос частично
	var selected *time.Time
	if req.SelectedDate != nil {
		d, err := time.ParseInLocation(domain.DateFormat, *req.SelectedDate, time.Local)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id} - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		selected = &d
	}

	s, err := h.registry.Get(sessionID)
	if err != nil {
		h.respondError(w, "PUT", sessionID, err)
		return
	}

	if selected != nil || req.ClearSelectedDate {
		if s, err = h.registry.SetSelectedDate(sessionID, selected); err != nil {
			h.respondError(w, "PUT", sessionID, err)
			return
		}
	}
	if req.IsMember != nil {
		if s, err = h.registry.SetMember(sessionID, *req.IsMember); err != nil {
			h.respondError(w, "PUT", sessionID, err)
			return
		}
	}

	h.logger.Info("PUT /sessions/{id} - Session updated: session_id=%s, member=%t", sessionID, s.IsMember)
	handlers.RespondJSON(w, http.StatusOK, FromSession(s))
}

// Delete DELETE /api/v1/sessions/{sessionId}
// Повторное удаление возвращает 200 с removed=false
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	removed := h.registry.Delete(sessionID)

	h.logger.Info("DELETE /sessions/{id} - Delete processed: session_id=%s, removed=%t", sessionID, removed)
	handlers.RespondJSON(w, http.StatusOK, &DeleteSessionResponse{ID: sessionID, Removed: removed})
}

func (h *Handler) respondError(w http.ResponseWriter, method, sessionID string, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		h.logger.Warn("%s /sessions/{id} - Session not found: session_id=%s", method, sessionID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}
	h.logger.Error("%s /sessions/{id} - Failed: session_id=%s, error=%v", method, sessionID, err)
	handlers.RespondInternalError(w)
}
