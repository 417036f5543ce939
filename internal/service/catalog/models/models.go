package models

import "time"

// Request модели

// QuoteRequest запрос расчета стоимости
type QuoteRequest struct {
	Duration string
	Type     string
	Quantity int // 0 = не указано
	IsMember bool
}

// Response модели

// QuoteResponse рассчитанная стоимость
type QuoteResponse struct {
	Duration string  `json:"duration"`
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"` // нормализованное количество
	IsMember bool    `json:"isMember"`
	BaseRate float64 `json:"baseRate"`
	Total    float64 `json:"total"`
}

// ResourceResponse описание типа ресурса
type ResourceResponse struct {
	Type                    string `json:"type"`
	Label                   string `json:"label"`
	UnitLabel               string `json:"unitLabel"`
	Capacity                int    `json:"capacity"`
	SingleUnit              bool   `json:"singleUnit"`
	QuantityMultipliesPrice bool   `json:"quantityMultipliesPrice"`
}

// DurationResponse длительность и ее базовая ставка
type DurationResponse struct {
	Duration string  `json:"duration"`
	Hours    int     `json:"hours"`
	BaseRate float64 `json:"baseRate"`
}

// CatalogResponse постоянные параметры клуба
type CatalogResponse struct {
	Resources             []ResourceResponse `json:"resources"`
	Durations             []DurationResponse `json:"durations"`
	TimeSlots             []string           `json:"timeSlots"`
	MemberPriceMultiplier float64            `json:"memberPriceMultiplier"`
}

// CalendarDay день месячной сетки
type CalendarDay struct {
	Date     time.Time
	Bookable bool // не раньше завтрашнего дня
}

// CalendarResponse месячная сетка календаря
type CalendarResponse struct {
	Month           time.Time // первое число месяца
	LeadingWeekday  int       // день недели первого числа, 0 = воскресенье
	Days            []CalendarDay
	PreviousMonth   time.Time
	NextMonth       time.Time
	FirstBookableOn time.Time
}
