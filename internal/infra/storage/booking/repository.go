package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// Repository in-memory хранилище бронирований.
// Порядок вставки сохраняется, наружу отдаются только копии.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
	clock    Clock
}

// NewRepository создает пустое хранилище бронирований
func NewRepository() *Repository {
	return NewRepositoryWithClock(realClock{})
}

// NewRepositoryWithClock создает хранилище с заданным источником времени
func NewRepositoryWithClock(clock Clock) *Repository {
	return &Repository{
		byID:  make(map[string]*domain.Booking),
		clock: clock,
	}
}

// Create сохраняет бронирование.
// Если ID не задан, генерируется UUID; CreatedAt проставляется, если пуст.
// Проверка вместимости выполняется вызывающей стороной внутри транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil {
		return nil, ErrNilBooking
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := booking.Clone()
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[stored.ID]; exists {
		return nil, fmt.Errorf("%w: Create - id %s", ErrDuplicateID, stored.ID)
	}

	r.bookings = append(r.bookings, stored)
	r.byID[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: GetByID - id %s", ErrBookingNotFound, id)
	}
	return b.Clone(), nil
}

// Delete удаляет бронирование по ID.
// Возвращает false без ошибки, если бронирования не было.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	return true, nil
}

// List возвращает все бронирования по возрастанию даты,
// внутри одной даты в порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.GetByFilter(ctx, domain.BookingsFilter{})
}

// GetByFilter возвращает бронирования, подходящие под фильтр, в порядке List
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if matchesFilter(b, filter) {
			result = append(result, b.Clone())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return dateutil.StartOfDay(result[i].Date).Before(dateutil.StartOfDay(result[j].Date))
	})

	return result, nil
}

// Count возвращает количество хранимых бронирований
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

func matchesFilter(b *domain.Booking, filter domain.BookingsFilter) bool {
	if filter.Date != nil && !dateutil.IsSameDay(b.Date, *filter.Date) {
		return false
	}
	if filter.Type != nil && b.Type != *filter.Type {
		return false
	}
	if filter.TimeSlot != nil && b.TimeSlot != *filter.TimeSlot {
		return false
	}
	return true
}
