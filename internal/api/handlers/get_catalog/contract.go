package get_catalog

import "github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"

type CatalogService interface {
	Catalog() *models.CatalogResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
