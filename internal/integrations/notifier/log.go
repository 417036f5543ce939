package notifier

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// LogNotifier пишет уведомление в лог, используется без настроенного SMTP
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает notifier, который только логирует
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify всегда успешен
func (n *LogNotifier) Notify(_ context.Context, booking *domain.Booking) error {
	n.log.Info("Notification for booking id=%s:\n%s", booking.ID, FormatBookingDetails(booking))
	return nil
}

// BookingNotifier общий контракт каналов уведомлений
type BookingNotifier interface {
	Notify(ctx context.Context, booking *domain.Booking) error
}

// Multi отправляет уведомление во все каналы.
// Ошибка возвращается, если не сработал хотя бы один канал.
type Multi []BookingNotifier

// Notify отправляет уведомление во все каналы по очереди
func (m Multi) Notify(ctx context.Context, booking *domain.Booking) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, booking); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Drain дожидается фоновых отправок каналов, которые их ведут
func (m Multi) Drain(ctx context.Context) error {
	var errs []error
	for _, n := range m {
		if err := Drain(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Drain дожидается фоновых отправок notifier, если он их ведет.
// Для остальных каналов сразу возвращает nil.
func Drain(ctx context.Context, n BookingNotifier) error {
	d, ok := n.(interface {
		Drain(ctx context.Context) error
	})
	if !ok {
		return nil
	}
	return d.Drain(ctx)
}
