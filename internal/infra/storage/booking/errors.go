package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID возвращается при вставке бронирования с уже существующим ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrNilBooking возвращается при попытке сохранить nil
	ErrNilBooking = errors.New("booking.repository: nil booking")
)
