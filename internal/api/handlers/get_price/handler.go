package get_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"
)

const (
	msgInvalidQuantity = "некорректное количество"
	msgInvalidMember   = "некорректный признак членства, ожидается true/false"
	msgInvalidParams   = "некорректные параметры запроса"
)

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

// Handle GET /api/v1/prices
// Query params: duration, type (required), quantity, member (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.QuoteRequest{
		Duration: query.Get("duration"),
		Type:     query.Get("type"),
	}

	if q := query.Get("quantity"); q != "" {
		quantity, err := strconv.Atoi(q)
		if err != nil {
			h.logger.Warn("GET /prices - Invalid quantity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)
			return
		}
		req.Quantity = quantity
	}

	if m := query.Get("member"); m != "" {
		isMember, err := strconv.ParseBool(m)
		if err != nil {
			h.logger.Warn("GET /prices - Invalid member flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMember)
			return
		}
		req.IsMember = isMember
	}

	result, err := h.service.Quote(req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /prices - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /prices - Failed to quote: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
