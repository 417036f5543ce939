package get_calendar

import (
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/catalog/models"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month           string        `json:"month"` // "2024-06"
	LeadingWeekday  int           `json:"leadingWeekday"`
	Days            []CalendarDay `json:"days"`
	PreviousMonth   string        `json:"previousMonth"`
	NextMonth       string        `json:"nextMonth"`
	FirstBookableOn string        `json:"firstBookableOn"`
}

// CalendarDay день сетки
type CalendarDay struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Bookable bool   `json:"bookable"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CalendarResponse) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Date:     d.Date.Format(domain.DateFormat),
			Day:      d.Date.Day(),
			Bookable: d.Bookable,
		}
	}

	return &CalendarResponse{
		Month:           resp.Month.Format(domain.MonthFormat),
		LeadingWeekday:  resp.LeadingWeekday,
		Days:            days,
		PreviousMonth:   resp.PreviousMonth.Format(domain.MonthFormat),
		NextMonth:       resp.NextMonth.Format(domain.MonthFormat),
		FirstBookableOn: resp.FirstBookableOn.Format(domain.DateFormat),
	}
}
