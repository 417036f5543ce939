package get_price

import "github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"

type CatalogService interface {
	Quote(req *models.QuoteRequest) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
