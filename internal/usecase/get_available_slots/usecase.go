package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/availability"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewUseCaseWithTimeProvider создает use case с заданным источником времени
func NewUseCaseWithTimeProvider(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	uc := NewUseCase(bookingRepo, logger)
	uc.timeProvider = timeProvider
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Снимок доступности пересчитывается из хранилища при каждом вызове.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: type=%s, date=%s", req.Type, req.Date.Format(domain.DateFormat))

	// 2. Для сегодняшней и прошедших дат бронирование невозможно
	now := uc.timeProvider.Now()
	if !availability.IsBookableDate(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is before tomorrow, no slots", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Type: req.Type, Slots: []Slot{}}, nil
	}

	// 3. Получаем все бронирования этого типа на дату
	filter := domain.BookingsFilter{
		Date: &req.Date,
		Type: &req.Type,
	}
	bookings, err := uc.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем доступность для каждого слота
	slots := toSlots(availability.Snapshot(bookings, req.Date, req.Type, now))

	uc.logger.Info("GetAvailableSlots: generated %d slots for type=%s, date=%s, bookings=%d",
		len(slots), req.Type, req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:  req.Date,
		Type:  req.Type,
		Slots: slots,
	}, nil
}
