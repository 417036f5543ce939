package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// WebhookPayload тело запроса webhook
type WebhookPayload struct {
	Event     string  `json:"event"`
	BookingID string  `json:"booking_id"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"time_slot"`
	Duration  string  `json:"duration"`
	Type      string  `json:"type"`
	Quantity  int     `json:"quantity"`
	IsMember  bool    `json:"is_member"`
	Total     float64 `json:"total"`
	Text      string  `json:"text"`
}

// WebhookNotifier отправляет уведомление POST-запросом (чат-бот, CRM)
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewWebhookNotifier создает новый экземпляр webhook-клиента
func NewWebhookNotifier(url string, timeout time.Duration, log Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет данные бронирования на webhook
func (n *WebhookNotifier) Notify(ctx context.Context, booking *domain.Booking) error {
	if n.url == "" {
		return fmt.Errorf("%w: webhook url is empty", ErrNotConfigured)
	}

	payload := WebhookPayload{
		Event:     "booking.created",
		BookingID: booking.ID,
		Date:      dateutil.StartOfDay(booking.Date).Format(domain.DateFormat),
		TimeSlot:  booking.TimeSlot.String(),
		Duration:  string(booking.Duration),
		Type:      string(booking.Type),
		Quantity:  booking.UnitsConsumed(),
		IsMember:  booking.IsMember,
		Total:     booking.TotalPrice,
		Text:      FormatBookingDetails(booking),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	n.log.Info("Webhook: booking id=%s delivered", booking.ID)
	return nil
}
