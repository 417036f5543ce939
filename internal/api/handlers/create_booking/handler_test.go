package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err      error
	received *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.received = req
	if f.err != nil {
		return nil, f.err
	}
	d := req.Draft
	return &createBooking.Response{
		ID:         "booking-1",
		Date:       d.Date,
		TimeSlot:   d.TimeSlot,
		Duration:   d.Duration,
		Type:       d.Type,
		Quantity:   d.Type.NormalizeQuantity(d.Quantity),
		IsMember:   req.IsMember,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		TotalPrice: domain.Price(d.Duration, req.IsMember, d.Quantity, d.Type),
		CreatedAt:  time.Date(2024, time.June, 9, 12, 0, 0, 0, time.UTC),
	}, nil
}

type fakeSessions map[string]session.Session

func (f fakeSessions) Get(id string) (session.Session, error) {
	s, ok := f[id]
	if !ok {
		return session.Session{}, fmt.Errorf("%w: %s", session.ErrSessionNotFound, id)
	}
	return s, nil
}

const validBody = `{
	"date": "2024-06-10",
	"timeSlot": "14:00",
	"duration": "2h",
	"type": "pc",
	"quantity": 3,
	"name": "Alice",
	"email": "alice@example.com",
	"phone": "+420 123"
}`

func do(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, fakeSessions{}, nopLogger{})

	rec := do(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "14:00", resp.TimeSlot)
	assert.Equal(t, "PC Gaming", resp.TypeLabel)
	assert.Equal(t, 3, resp.Quantity)
	assert.False(t, resp.IsMember)
	assert.InDelta(t, 18.0, resp.TotalPrice, 0.001)

	require.NotNil(t, uc.received)
	assert.Equal(t, 2024, uc.received.Draft.Date.Year())
	assert.Equal(t, domain.ResourcePC, uc.received.Draft.Type)
}

func TestHandle_MembershipFromSession(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, fakeSessions{"s-1": {ID: "s-1", IsMember: true}}, nopLogger{})

	body := strings.Replace(validBody, `"date"`, `"sessionId": "s-1", "isMember": false, "date"`, 1)
	rec := do(h, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.received.IsMember)

	body = strings.Replace(validBody, `"date"`, `"sessionId": "missing", "date"`, 1)
	rec = do(h, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ucErr  error
		status int
	}{
		{name: "некорректный json", body: `{"date":`, status: http.StatusBadRequest},
		{name: "неизвестное поле", body: `{"foo": 1}`, status: http.StatusBadRequest},
		{name: "некорректная дата", body: strings.Replace(validBody, "2024-06-10", "10.06.2024", 1), status: http.StatusBadRequest},
		{name: "некорректное время", body: strings.Replace(validBody, "14:00", "2pm", 1), status: http.StatusBadRequest},
		{name: "нет мест", body: validBody, ucErr: createBooking.ErrCapacityExceeded, status: http.StatusConflict},
		{name: "дата раньше завтра", body: validBody, ucErr: createBooking.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "слот вне каталога", body: validBody, ucErr: createBooking.ErrInvalidTimeSlot, status: http.StatusBadRequest},
		{name: "невалидные данные", body: validBody, ucErr: createBooking.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "внутренняя ошибка", body: validBody, ucErr: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, fakeSessions{}, nopLogger{})
			rec := do(h, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
