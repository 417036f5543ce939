package remove_booking

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Remove(ctx context.Context, id string) (*models.RemoveBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
