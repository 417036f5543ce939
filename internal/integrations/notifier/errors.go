package notifier

import "errors"

var (
	// ErrNotConfigured возвращается, когда канал уведомлений не настроен
	ErrNotConfigured = errors.New("notifier: not configured")

	// ErrSendFailed возвращается при ошибке отправки уведомления
	ErrSendFailed = errors.New("notifier: send failed")

	// ErrInvalidResponse возвращается при некорректном ответе webhook
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")
)
