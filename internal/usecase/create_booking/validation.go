package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClubBookingService/internal/availability"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var validateFields = validator.New()

// contactFields контактные данные черновика в виде, пригодном для struct-валидации.
// Ограничения длины проверяются отдельно по константам domain.
type contactFields struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
}

// validateRequest валидирует входные данные запроса и возвращает нормализованное количество
func validateRequest(req *Request, now time.Time) (int, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	draft := req.Draft

	contacts := contactFields{
		Name:  strings.TrimSpace(draft.Name),
		Email: strings.TrimSpace(draft.Email),
		Phone: strings.TrimSpace(draft.Phone),
	}
	if err := validateFields.Struct(contacts); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := checkLength("name", contacts.Name, domain.MaxNameLength); err != nil {
		return 0, err
	}
	if err := checkLength("phone", contacts.Phone, domain.MaxPhoneLength); err != nil {
		return 0, err
	}
	if draft.Description != nil {
		if err := checkLength("description", strings.TrimSpace(*draft.Description), domain.MaxDescriptionLength); err != nil {
			return 0, err
		}
	}

	if !draft.Type.IsValid() {
		return 0, fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, draft.Type)
	}

	if !draft.Duration.IsValid() {
		return 0, fmt.Errorf("%w: unknown duration %q", ErrInvalidInput, draft.Duration)
	}

	// Проверяем, что дата не является нулевой
	if draft.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsKnownTimeSlot(draft.TimeSlot) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, draft.TimeSlot)
	}

	quantity := draft.Type.NormalizeQuantity(draft.Quantity)
	if quantity < 1 || quantity > draft.Type.Capacity() {
		return 0, fmt.Errorf("%w: quantity must be between 1 and %d for %s, got %d",
			ErrInvalidInput, draft.Type.Capacity(), draft.Type, draft.Quantity)
	}

	// Бронирование возможно только начиная с завтрашнего дня
	if !availability.IsBookableDate(draft.Date, now) {
		return 0, fmt.Errorf("%w: %s is before tomorrow", ErrInvalidDate, draft.Date.Format(domain.DateFormat))
	}

	return quantity, nil
}

// checkLength длина считается в символах, а не в байтах
func checkLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Errorf("%w: %s is too long: %d characters, max %d", ErrInvalidInput, field, n, limit)
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
