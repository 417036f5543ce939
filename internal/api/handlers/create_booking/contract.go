package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// SessionStore источник признака членства для запросов с sessionId
type SessionStore interface {
	Get(id string) (session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
