package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM без привязки к дате
type TimeString string

// NewTimeString создает TimeString из часов и минут переданного времени
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и нормализует строку вида "9:00" / "09:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

func (t TimeString) String() string {
	return string(t)
}
