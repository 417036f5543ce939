package sessions

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
)

type SessionRegistry interface {
	Create() session.Session
	Get(id string) (session.Session, error)
	SetSelectedDate(id string, date *time.Time) (session.Session, error)
	SetMember(id string, isMember bool) (session.Session, error)
	Delete(id string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
