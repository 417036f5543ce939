package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Calendar(month time.Time) *models.CalendarResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
