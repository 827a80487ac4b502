package flume

import "time"

// NewMeterWithClock constructs a Meter with an injected clock for tests.
func NewMeterWithClock(now func() time.Time) *Meter {
	return newMeter(now)
}
