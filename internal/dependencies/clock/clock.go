package clock

import "time"

// Clock stamps log records. Tests swap it for mocks.MockClock.
type Clock interface {
	Now() time.Time
}

// UTC reads the system clock in UTC, so every store writes the same zone
type UTC struct{}

// New returns the system clock
func New() UTC {
	return UTC{}
}

func (UTC) Now() time.Time {
	return time.Now().UTC()
}
