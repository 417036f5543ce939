package models

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// BookingResponse модель бронирования для слоя представления
type BookingResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // "2024-06-10"
	TimeSlot    string    `json:"timeSlot"`
	Duration    string    `json:"duration"`
	Type        string    `json:"type"`
	TypeLabel   string    `json:"typeLabel"`
	Quantity    int       `json:"quantity"`
	IsMember    bool      `json:"isMember"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Description *string   `json:"description,omitempty"`
	TotalPrice  float64   `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// RemoveBookingResponse результат удаления бронирования
type RemoveBookingResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		Date:        b.Date.Format(domain.DateFormat),
		TimeSlot:    b.TimeSlot.String(),
		Duration:    string(b.Duration),
		Type:        string(b.Type),
		TypeLabel:   b.Type.Label(),
		Quantity:    b.UnitsConsumed(),
		IsMember:    b.IsMember,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Description: b.Description,
		TotalPrice:  b.TotalPrice,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
