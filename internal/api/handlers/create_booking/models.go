package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClubBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SessionID   *string `json:"sessionId,omitempty"` // членство берется из сессии
	Date        string  `json:"date"`                // "2025-10-15"
	TimeSlot    string  `json:"timeSlot"`            // "10:00"
	Duration    string  `json:"duration"`            // "1h".."4h"
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description *string `json:"description,omitempty"`
	IsMember    bool    `json:"isMember,omitempty"` // используется без sessionId
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	Duration    string  `json:"duration"`
	Type        string  `json:"type"`
	TypeLabel   string  `json:"typeLabel"`
	Quantity    int     `json:"quantity"`
	IsMember    bool    `json:"isMember"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description *string `json:"description,omitempty"`
	TotalPrice  float64 `json:"totalPrice"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(isMember bool) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Draft: domain.BookingDraft{
			Date:        date,
			TimeSlot:    slot,
			Duration:    domain.Duration(r.Duration),
			Type:        domain.ResourceType(r.Type),
			Quantity:    r.Quantity,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			Description: r.Description,
		},
		IsMember: isMember,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		Duration:    string(resp.Duration),
		Type:        string(resp.Type),
		TypeLabel:   resp.Type.Label(),
		Quantity:    resp.Quantity,
		IsMember:    resp.IsMember,
		Name:        resp.Name,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Description: resp.Description,
		TotalPrice:  resp.TotalPrice,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
