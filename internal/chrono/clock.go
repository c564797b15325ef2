package chrono

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is the only source of "now" for Instant; clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time {
	return time.Now()
}
