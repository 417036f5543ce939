// Package availability вычисляет доступность слотов по текущему набору бронирований.
// Все функции чистые: результат зависит только от переданных бронирований и now,
// поэтому снимок доступности всегда согласован с последним изменением хранилища.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
	"github.com/m04kA/SMC-ClubBookingService/pkg/types"
)

// ErrCapacityExceeded возвращается, когда в слоте не хватает свободных единиц ресурса
var ErrCapacityExceeded = errors.New("availability: capacity exceeded")

// EarliestBookableDate первый день, на который можно бронировать относительно now
func EarliestBookableDate(now time.Time) time.Time {
	return dateutil.AddDays(dateutil.StartOfDay(now), domain.MinAdvanceBookingDays)
}

// IsBookableDate проверяет правило минимального срока бронирования: дата не раньше EarliestBookableDate.
// Сравниваются календарные дни, часовой пояс date не учитывается.
func IsBookableDate(date, now time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !day.Before(EarliestBookableDate(now))
}

// Snapshot возвращает доступность всех слотов каталога на дату для типа ресурса.
// Для сегодняшней и прошедших дат возвращается пустой список.
func Snapshot(bookings []*domain.Booking, date time.Time, resourceType domain.ResourceType, now time.Time) []domain.AvailableSlot {
	if !IsBookableDate(date, now) {
		return []domain.AvailableSlot{}
	}

	consumed := consumedBySlot(bookings, date, resourceType)
	capacity := resourceType.Capacity()

	result := make([]domain.AvailableSlot, len(domain.TimeSlots))
	for i, slot := range domain.TimeSlots {
		remaining := capacity - consumed[slot]
		if remaining < 0 {
			remaining = 0
		}
		s := domain.AvailableSlot{
			StartTime:      slot,
			AvailableUnits: remaining,
			TotalUnits:     capacity,
		}
		s.Available = !s.IsFull()
		result[i] = s
	}

	return result
}

// Consumed суммирует занятые единицы ресурса в слоте
func Consumed(bookings []*domain.Booking, date time.Time, slot types.TimeString, resourceType domain.ResourceType) int {
	total := 0
	for _, b := range bookings {
		if matches(b, date, slot, resourceType) {
			total += b.UnitsConsumed()
		}
	}
	return total
}

// Remaining возвращает количество свободных единиц в слоте (может быть отрицательным,
// только если инвариант вместимости уже был нарушен извне)
func Remaining(bookings []*domain.Booking, date time.Time, slot types.TimeString, resourceType domain.ResourceType) int {
	return resourceType.Capacity() - Consumed(bookings, date, slot, resourceType)
}

// CheckCapacity проверяет, что в слоте есть quantity свободных единиц
func CheckCapacity(
	bookings []*domain.Booking,
	date time.Time,
	slot types.TimeString,
	resourceType domain.ResourceType,
	quantity int,
) error {
	remaining := Remaining(bookings, date, slot, resourceType)
	if quantity > remaining {
		return fmt.Errorf("%w: %s at %s on %s: requested %d, remaining %d of %d",
			ErrCapacityExceeded, resourceType, slot, date.Format(domain.DateFormat),
			quantity, max(remaining, 0), resourceType.Capacity())
	}
	return nil
}

func consumedBySlot(bookings []*domain.Booking, date time.Time, resourceType domain.ResourceType) map[types.TimeString]int {
	consumed := make(map[types.TimeString]int, len(domain.TimeSlots))
	for _, b := range bookings {
		if b.Type != resourceType || !dateutil.IsSameDay(b.Date, date) {
			continue
		}
		consumed[b.TimeSlot] += b.UnitsConsumed()
	}
	return consumed
}

func matches(b *domain.Booking, date time.Time, slot types.TimeString, resourceType domain.ResourceType) bool {
	return b.Type == resourceType && b.TimeSlot == slot && dateutil.IsSameDay(b.Date, date)
}
