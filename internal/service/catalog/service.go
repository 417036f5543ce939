package catalog

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/availability"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// Service сервис справочных данных клуба: типы ресурсов, тарифы, календарь
type Service struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewServiceWithTimeProvider создает сервис с заданным источником времени
func NewServiceWithTimeProvider(timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Catalog возвращает типы ресурсов, длительности с тарифами и каталог слотов
func (s *Service) Catalog() *models.CatalogResponse {
	resp := &models.CatalogResponse{
		Resources:             make([]models.ResourceResponse, 0, len(domain.AllResourceTypes)),
		Durations:             make([]models.DurationResponse, 0, len(domain.AllDurations)),
		TimeSlots:             make([]string, 0, len(domain.TimeSlots)),
		MemberPriceMultiplier: domain.MemberPriceMultiplier,
	}

	for _, t := range domain.AllResourceTypes {
		resp.Resources = append(resp.Resources, models.ResourceResponse{
			Type:                    string(t),
			Label:                   t.Label(),
			UnitLabel:               t.UnitLabel(),
			Capacity:                t.Capacity(),
			SingleUnit:              t.IsSingleUnit(),
			QuantityMultipliesPrice: t.QuantityMultipliesPrice(),
		})
	}
	for _, d := range domain.AllDurations {
		resp.Durations = append(resp.Durations, models.DurationResponse{
			Duration: string(d),
			Hours:    d.Hours(),
			BaseRate: d.BaseRate(),
		})
	}
	for _, slot := range domain.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, slot.String())
	}

	return resp
}

// Quote считает стоимость бронирования без его создания
func (s *Service) Quote(req *models.QuoteRequest) (*models.QuoteResponse, error) {
	duration := domain.Duration(req.Duration)
	if !duration.IsValid() {
		return nil, fmt.Errorf("%w: unknown duration %q", ErrInvalidInput, req.Duration)
	}

	resourceType := domain.ResourceType(req.Type)
	if !resourceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.Type)
	}

	quantity := resourceType.NormalizeQuantity(req.Quantity)
	if quantity < 1 || quantity > resourceType.Capacity() {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d for %s",
			ErrInvalidInput, resourceType.Capacity(), resourceType)
	}

	return &models.QuoteResponse{
		Duration: string(duration),
		Type:     string(resourceType),
		Quantity: quantity,
		IsMember: req.IsMember,
		BaseRate: duration.BaseRate(),
		Total:    domain.Price(duration, req.IsMember, quantity, resourceType),
	}, nil
}

// Calendar строит месячную сетку для выбора даты.
// Дни раньше завтрашнего помечаются как недоступные для бронирования.
func (s *Service) Calendar(month time.Time) *models.CalendarResponse {
	now := s.timeProvider.Now()
	if month.IsZero() {
		month = now
	}
	first := dateutil.StartOfMonth(month)

	days := dateutil.DaysInMonth(first)
	calendarDays := make([]models.CalendarDay, len(days))
	for i, d := range days {
		calendarDays[i] = models.CalendarDay{
			Date:     d,
			Bookable: availability.IsBookableDate(d, now),
		}
	}

	s.logger.Info("Calendar: month=%s, days=%d", first.Format(domain.MonthFormat), len(days))

	return &models.CalendarResponse{
		Month:           first,
		LeadingWeekday:  dateutil.StartOfMonthWeekday(first),
		Days:            calendarDays,
		PreviousMonth:   dateutil.SubMonths(first, 1),
		NextMonth:       dateutil.AddMonths(first, 1),
		FirstBookableOn: availability.EarliestBookableDate(now),
	}
}
