package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Draft    domain.BookingDraft
	IsMember bool // состояние сессии на момент отправки
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	Date        time.Time
	TimeSlot    types.TimeString
	Duration    domain.Duration
	Type        domain.ResourceType
	Quantity    int
	IsMember    bool
	Name        string
	Email       string
	Phone       string
	Description *string
	TotalPrice  float64
	CreatedAt   time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Duration:    b.Duration,
		Type:        b.Type,
		Quantity:    b.Quantity,
		IsMember:    b.IsMember,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Description: b.Description,
		TotalPrice:  b.TotalPrice,
		CreatedAt:   b.CreatedAt,
	}
}
