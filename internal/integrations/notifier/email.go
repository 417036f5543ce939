package notifier

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// EmailConfig параметры SMTP
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // почтовый ящик клуба
}

// EmailNotifier отправляет письмо о новом бронировании на почту клуба
type EmailNotifier struct {
	cfg    EmailConfig
	dialer Dialer
	log    Logger

	sending sync.WaitGroup
}

// NewEmailNotifier создает notifier с SMTP-диалером gomail
func NewEmailNotifier(cfg EmailConfig, log Logger) *EmailNotifier {
	return NewEmailNotifierWithDialer(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), log)
}

// NewEmailNotifierWithDialer создает notifier с заданным диалером
func NewEmailNotifierWithDialer(cfg EmailConfig, dialer Dialer, log Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		dialer: dialer,
		log:    log,
	}
}

// Notify отправляет письмо. gomail не поддерживает контекст: при отмене ctx Notify
// сразу возвращает ошибку, а SMTP-сессия продолжается в фоне до ответа сервера.
// Такие отправки учитываются и дожидаются через Drain.
func (n *EmailNotifier) Notify(ctx context.Context, booking *domain.Booking) error {
	if n.cfg.To == "" || n.cfg.From == "" {
		return fmt.Errorf("%w: email sender or recipient is empty", ErrNotConfigured)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Reply-To", booking.Email)
	m.SetHeader("Subject", Subject(booking))
	m.SetBody("text/plain", FormatBookingDetails(booking))

	done := make(chan error, 1)
	n.sending.Add(1)
	go func() {
		defer n.sending.Done()
		done <- n.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			n.log.Error("Email: could not send booking id=%s to %s: %v", booking.ID, n.cfg.To, err)
			return fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
		n.log.Info("Email: booking id=%s sent to %s", booking.ID, n.cfg.To)
		return nil
	case <-ctx.Done():
		n.log.Warn("Email: stopped waiting for booking id=%s, send continues in background: %v", booking.ID, ctx.Err())
		return fmt.Errorf("%w: %v", ErrSendFailed, ctx.Err())
	}
}

// Drain ждет завершения всех начатых SMTP-отправок, но не дольше ctx
func (n *EmailNotifier) Drain(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		n.sending.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email sends still in flight: %w", ctx.Err())
	}
}
