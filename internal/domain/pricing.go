package domain

import "math"

// Duration длительность бронирования
type Duration string

const (
	Duration1h Duration = "1h"
	Duration2h Duration = "2h"
	Duration3h Duration = "3h"
	Duration4h Duration = "4h"
)

// AllDurations в порядке отображения
var AllDurations = []Duration{Duration1h, Duration2h, Duration3h, Duration4h}

var baseRates = map[Duration]float64{
	Duration1h: 3,
	Duration2h: 6,
	Duration3h: 9,
	Duration4h: 12,
}

var durationHours = map[Duration]int{
	Duration1h: 1,
	Duration2h: 2,
	Duration3h: 3,
	Duration4h: 4,
}

// IsValid returns true for a known duration
func (d Duration) IsValid() bool {
	_, ok := baseRates[d]
	return ok
}

// BaseRate returns the non-member price of the duration, 0 for an unknown one
func (d Duration) BaseRate() float64 {
	return baseRates[d]
}

// Hours returns the duration length in hours
func (d Duration) Hours() int {
	return durationHours[d]
}

// Price считает стоимость бронирования:
// baseRate(duration) × (0.33 для участников) × (quantity только для pc и karaoke).
// Результат округляется до центов.
func Price(duration Duration, isMember bool, quantity int, resourceType ResourceType) float64 {
	price := duration.BaseRate()
	if isMember {
		price *= MemberPriceMultiplier
	}
	if resourceType.QuantityMultipliesPrice() && quantity > 1 {
		price *= float64(quantity)
	}
	return math.Round(price*100) / 100
}
