package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	UnitLabel string          `json:"unitLabel"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime      string  `json:"startTime"`
	Available      bool    `json:"available"`
	AvailableUnits int     `json:"availableUnits"`
	TotalUnits     int     `json:"totalUnits"`
	OccupancyRate  float64 `json:"occupancyRate"` // 0-100
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:      slot.StartTime.String(),
			Available:      slot.Available,
			AvailableUnits: slot.AvailableUnits,
			TotalUnits:     slot.TotalUnits,
			OccupancyRate:  slot.OccupancyRate,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Type:      string(resp.Type),
		UnitLabel: resp.Type.UnitLabel(),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, typeStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
		Type: domain.ResourceType(typeStr),
	}, nil
}
