package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct{ removed int }

func (m *countingMetrics) BookingRemoved() { m.removed++ }

type fakeTimeProvider struct{ now time.Time }

func (p *fakeTimeProvider) Now() time.Time { return p.now }

var (
	now      = time.Date(2024, time.June, 9, 12, 0, 0, 0, time.Local)
	tomorrow = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
)

func seed(t *testing.T, repo *bookingRepo.Repository, b *domain.Booking) *domain.Booking {
	t.Helper()
	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	return created
}

func TestService_GetByID(t *testing.T) {
	repo := bookingRepo.NewRepository()
	svc := NewService(repo, txmanager.NewTransactionManager(), &countingMetrics{}, nopLogger{})

	created := seed(t, repo, &domain.Booking{
		Date: tomorrow, TimeSlot: "16:00", Duration: domain.Duration3h,
		Type: domain.ResourceKaraoke, Quantity: 2, Name: "Alice", TotalPrice: 18,
	})

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Karaoke", got.TypeLabel)
	assert.Equal(t, "16:00", got.TimeSlot)
	assert.Equal(t, 2, got.Quantity)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListOrderedByDate(t *testing.T) {
	repo := bookingRepo.NewRepository()
	svc := NewService(repo, txmanager.NewTransactionManager(), &countingMetrics{}, nopLogger{})

	seed(t, repo, &domain.Booking{Date: tomorrow.AddDate(0, 0, 2), TimeSlot: "10:00", Type: domain.ResourcePC, Name: "later"})
	seed(t, repo, &domain.Booking{Date: tomorrow, TimeSlot: "22:00", Type: domain.ResourcePC, Name: "first"})
	seed(t, repo, &domain.Booking{Date: tomorrow, TimeSlot: "10:00", Type: domain.ResourcePC, Name: "second"})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "first", list.Bookings[0].Name)
	assert.Equal(t, "second", list.Bookings[1].Name)
	assert.Equal(t, "later", list.Bookings[2].Name)
}

func TestService_ListEmpty(t *testing.T) {
	svc := NewService(bookingRepo.NewRepository(), txmanager.NewTransactionManager(), &countingMetrics{}, nopLogger{})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Bookings)
}

func TestService_RemoveIsIdempotent(t *testing.T) {
	repo := bookingRepo.NewRepository()
	metrics := &countingMetrics{}
	svc := NewService(repo, txmanager.NewTransactionManager(), metrics, nopLogger{})

	created := seed(t, repo, &domain.Booking{Date: tomorrow, TimeSlot: "10:00", Type: domain.ResourcePC, Quantity: 1})

	resp, err := svc.Remove(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, resp.Removed)

	resp, err = svc.Remove(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, resp.Removed)

	resp, err = svc.Remove(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, resp.Removed)

	assert.Equal(t, 1, metrics.removed)
	assert.Equal(t, 0, repo.Count())
}

func TestService_RemoveRestoresCapacity(t *testing.T) {
	repo := bookingRepo.NewRepository()
	svc := NewService(repo, txmanager.NewTransactionManager(), &countingMetrics{}, nopLogger{})
	slots := get_available_slots.NewUseCaseWithTimeProvider(repo, &fakeTimeProvider{now: now}, nopLogger{})
	ctx := context.Background()

	req := &get_available_slots.Request{Date: tomorrow, Type: domain.ResourcePC}
	before, err := slots.Execute(ctx, req)
	require.NoError(t, err)

	created := seed(t, repo, &domain.Booking{Date: tomorrow, TimeSlot: "13:00", Type: domain.ResourcePC, Quantity: 4})

	during, err := slots.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, during.Slots[3].AvailableUnits)

	_, err = svc.Remove(ctx, created.ID)
	require.NoError(t, err)

	after, err := slots.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, before.Slots, after.Slots)
}

func TestService_CancelledContext(t *testing.T) {
	svc := NewService(bookingRepo.NewRepository(), txmanager.NewTransactionManager(), &countingMetrics{}, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Remove(ctx, "any")
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}
