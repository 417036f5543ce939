package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/availability"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// DefaultNotifyTimeout ограничение на отправку одного уведомления
const DefaultNotifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	txManager     TransactionManager
	notifier      Notifier
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
	notifyTimeout time.Duration

	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		notifyTimeout: notifyTimeout,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции:
// при нехватке мест в хранилище ничего не записывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	quantity, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	draft := req.Draft

	uc.logger.Info("CreateBooking: type=%s, date=%s, time=%s, duration=%s, quantity=%d, member=%t",
		draft.Type, draft.Date.Format(domain.DateFormat), draft.TimeSlot, draft.Duration, quantity, req.IsMember)

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем все бронирования этого типа на дату и слот
		filter := domain.BookingsFilter{
			Date:     &draft.Date,
			Type:     &draft.Type,
			TimeSlot: &draft.TimeSlot,
		}
		bookings, err := uc.bookingRepo.GetByFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.2. Проверяем доступность слота
		if err := availability.CheckCapacity(bookings, draft.Date, draft.TimeSlot, draft.Type, quantity); err != nil {
			if errors.Is(err, availability.ErrCapacityExceeded) {
				return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 2.3. Создаем бронирование со снимком членства и цены
		booking := &domain.Booking{
			Date:        dateutil.StartOfDay(draft.Date),
			TimeSlot:    draft.TimeSlot,
			Duration:    draft.Duration,
			Type:        draft.Type,
			Quantity:    quantity,
			IsMember:    req.IsMember,
			Name:        strings.TrimSpace(draft.Name),
			Email:       strings.TrimSpace(draft.Email),
			Phone:       strings.TrimSpace(draft.Phone),
			Description: trimmedOrNil(draft.Description),
			TotalPrice:  domain.Price(draft.Duration, req.IsMember, quantity, draft.Type),
			CreatedAt:   now,
		}

		// 2.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			uc.metrics.CapacityRejected(string(draft.Type))
			uc.logger.Warn("CreateBooking: slot not available: %v", err)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated(string(result.Type))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, price=%.2f", result.ID, result.TotalPrice)

	// 3. Уведомление отправляется асинхронно, его результат не влияет на бронирование
	uc.notify(result)

	return toResponse(result), nil
}

// Wait ожидает завершения отправки всех запущенных уведомлений
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

func (uc *UseCase) notify(booking *domain.Booking) {
	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		if err := uc.notifier.Notify(ctx, booking); err != nil {
			uc.metrics.NotificationFailed()
			uc.logger.Warn("CreateBooking: failed to send notification for booking id=%s: %v", booking.ID, err)
			return
		}
		uc.logger.Info("CreateBooking: notification sent for booking id=%s", booking.ID)
	}()
}
