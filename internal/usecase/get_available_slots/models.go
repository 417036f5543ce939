package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time           // Дата для получения слотов (без времени)
	Type domain.ResourceType // Тип ресурса
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time
	Type  domain.ResourceType
	Slots []Slot // Пусто, если дата раньше завтрашней
}

// Slot модель временного слота
type Slot struct {
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Available      bool             // Есть хотя бы одна свободная единица
	AvailableUnits int              // Количество свободных единиц ресурса
	TotalUnits     int              // Вместимость типа ресурса
	OccupancyRate  float64          // Занятость в процентах
}

func toSlots(snapshot []domain.AvailableSlot) []Slot {
	result := make([]Slot, len(snapshot))
	for i := range snapshot {
		s := &snapshot[i]
		result[i] = Slot{
			StartTime:      s.StartTime,
			Available:      s.Available,
			AvailableUnits: s.AvailableUnits,
			TotalUnits:     s.TotalUnits,
			OccupancyRate:  s.OccupancyRate(),
		}
	}
	return result
}
