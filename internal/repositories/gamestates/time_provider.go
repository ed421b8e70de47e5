package gamestates

import "time"

// TimeProvider supplies the timestamp recorded alongside a saved state
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
