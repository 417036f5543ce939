// Package session хранит состояние интерфейса бронирования отдельно для каждого посетителя:
// выбранную в календаре дату и признак членства в клубе.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// Session состояние одной сессии
type Session struct {
	ID           string
	SelectedDate *time.Time
	IsMember     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registry потокобезопасный реестр независимых сессий
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	timeProvider TimeProvider
	logger       Logger
}

// NewRegistry создает пустой реестр
func NewRegistry(logger Logger) *Registry {
	return NewRegistryWithTimeProvider(realTimeProvider{}, logger)
}

// NewRegistryWithTimeProvider создает реестр с заданным источником времени
func NewRegistryWithTimeProvider(timeProvider TimeProvider, logger Logger) *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create открывает новую сессию: дата не выбрана, членства нет
func (r *Registry) Create() Session {
	now := r.timeProvider.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Info("Session: created id=%s", s.ID)
	return s.copy()
}

// Get возвращает снимок состояния сессии
func (r *Registry) Get(id string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: id %s", ErrSessionNotFound, id)
	}
	return s.copy(), nil
}

// SetSelectedDate выбирает дату в календаре, nil сбрасывает выбор
func (r *Registry) SetSelectedDate(id string, date *time.Time) (Session, error) {
	return r.update(id, func(s *Session) {
		if date == nil {
			s.SelectedDate = nil
			return
		}
		d := dateutil.StartOfDay(*date)
		s.SelectedDate = &d
	})
}

// SetMember переключает признак членства
func (r *Registry) SetMember(id string, isMember bool) (Session, error) {
	return r.update(id, func(s *Session) {
		s.IsMember = isMember
	})
}

// Delete закрывает сессию
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	r.logger.Info("Session: deleted id=%s", id)
	return true
}

func (r *Registry) update(id string, fn func(s *Session)) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: id %s", ErrSessionNotFound, id)
	}
	fn(s)
	s.UpdatedAt = r.timeProvider.Now()

	return s.copy(), nil
}

func (s *Session) copy() Session {
	c := *s
	if s.SelectedDate != nil {
		d := *s.SelectedDate
		c.SelectedDate = &d
	}
	return c
}
