package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct{ err error }

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	slots := make([]getAvailableSlots.Slot, 0, len(domain.TimeSlots))
	for _, s := range domain.TimeSlots {
		slots = append(slots, getAvailableSlots.Slot{
			StartTime:      s,
			Available:      true,
			AvailableUnits: req.Type.Capacity(),
			TotalUnits:     req.Type.Capacity(),
			OccupancyRate:  25,
		})
	}
	return &getAvailableSlots.Response{Date: req.Date, Type: req.Type, Slots: slots}, nil
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2024-06-10&type=playstation", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "playstation", resp.Type)
	assert.Equal(t, "consoles", resp.UnitLabel)
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, 3, resp.Slots[0].TotalUnits)
	assert.InDelta(t, 25.0, resp.Slots[0].OccupancyRate, 0.001)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		ucErr  error
		status int
	}{
		{name: "нет даты", query: "type=pc", status: http.StatusBadRequest},
		{name: "нет типа", query: "date=2024-06-10", status: http.StatusBadRequest},
		{name: "некорректная дата", query: "date=2024-13-40&type=pc", status: http.StatusBadRequest},
		{name: "неизвестный тип", query: "date=2024-06-10&type=bowling",
			ucErr: fmt.Errorf("%w: unknown", getAvailableSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "внутренняя ошибка", query: "date=2024-06-10&type=pc", ucErr: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
