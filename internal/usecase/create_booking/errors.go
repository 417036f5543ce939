package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата бронирования раньше завтрашней
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrCapacityExceeded возвращается, когда в слоте не хватает свободных единиц ресурса
	ErrCapacityExceeded = errors.New("create_booking: capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
