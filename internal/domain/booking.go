package domain

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/pkg/types"
)

// Booking represents a committed reservation of one or more units of a resource
type Booking struct {
	ID       string
	Date     time.Time // календарный день, время суток не учитывается
	TimeSlot types.TimeString
	Duration Duration
	Type     ResourceType
	Quantity int
	IsMember bool // снимок членства на момент создания

	Name        string
	Email       string
	Phone       string
	Description *string

	TotalPrice float64
	CreatedAt  time.Time
}

// UnitsConsumed returns the number of resource units the booking occupies.
// Records without quantity count as a single unit.
func (b *Booking) UnitsConsumed() int {
	if b.Quantity <= 0 {
		return 1
	}
	return b.Quantity
}

// Clone returns a deep copy so callers cannot mutate stored state
func (b *Booking) Clone() *Booking {
	c := *b
	if b.Description != nil {
		d := *b.Description
		c.Description = &d
	}
	return &c
}

// BookingDraft is a booking request before validation and identifier assignment
type BookingDraft struct {
	Date        time.Time
	TimeSlot    types.TimeString
	Duration    Duration
	Type        ResourceType
	Quantity    int // 0 = не указано
	Name        string
	Email       string
	Phone       string
	Description *string
}

// BookingsFilter фильтр выборки бронирований, nil-поля не ограничивают выборку
type BookingsFilter struct {
	Date     *time.Time
	Type     *ResourceType
	TimeSlot *types.TimeString
}
