package effects

import "time"

// Throttle lets one call through, then blocks further calls for Limit.
type Throttle struct {
	Limit time.Duration
	last  time.Time
}

func NewThrottle(limit time.Duration) *Throttle {
	return &Throttle{Limit: limit}
}

// Allow reports whether a call at now may run, and records it if so.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.Limit {
		return false
	}
	t.last = now
	return true
}
