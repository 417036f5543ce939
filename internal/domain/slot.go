package domain

import "github.com/m04kA/SMC-ClubBookingService/pkg/types"

// TimeSlots фиксированный каталог времени начала, одинаковый для всех дней и типов
var TimeSlots = []types.TimeString{
	"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
}

// IsKnownTimeSlot проверяет, что время входит в каталог слотов
func IsKnownTimeSlot(slot types.TimeString) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableSlot слот каталога с остатком вместимости для одного типа ресурса
type AvailableSlot struct {
	StartTime      types.TimeString
	Available      bool
	AvailableUnits int // свободные ПК, консоли, столы или комнаты
	TotalUnits     int
}

// IsFull в слоте не осталось свободных единиц
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableUnits <= 0
}

// OccupancyRate доля занятых единиц в процентах (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalUnits == 0 {
		return 0
	}
	occupied := s.TotalUnits - max(s.AvailableUnits, 0)
	return float64(occupied) / float64(s.TotalUnits) * 100
}
