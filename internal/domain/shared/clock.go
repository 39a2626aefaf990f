package shared

import "time"

// Clock supplies the current time for date validation. Injecting it keeps
// not-in-the-past checks deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the system time in UTC.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant. Test use only.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.Instant
}
