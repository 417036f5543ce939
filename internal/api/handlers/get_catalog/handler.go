package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
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

// Handle GET /api/v1/catalog
// Типы ресурсов с вместимостью, длительности с тарифами и каталог слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Catalog())
}
