package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает все бронирования по возрастанию даты
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	var result *models.BookingListResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		bookings, err := s.bookingRepo.List(txCtx)
		if err != nil {
			return err
		}
		result = models.FromDomainBookingList(bookings)
		return nil
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", result.Total)
	return result, nil
}

// Remove удаляет бронирование по ID. Повторное удаление не является ошибкой:
// возвращается Removed=false. Освобожденные единицы сразу видны в доступности слотов.
func (s *Service) Remove(ctx context.Context, id string) (*models.RemoveBookingResponse, error) {
	s.logger.Info("Remove: removing booking id=%s", id)

	var removed bool
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.bookingRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		s.logger.Error("Remove: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	if removed {
		s.metrics.BookingRemoved()
		s.logger.Info("Remove: booking id=%s removed", id)
	} else {
		s.logger.Info("Remove: booking id=%s not present, nothing to remove", id)
	}

	return &models.RemoveBookingResponse{ID: id, Removed: removed}, nil
}
