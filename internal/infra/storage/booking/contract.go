package booking

import "time"

// Clock источник времени для CreatedAt
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
