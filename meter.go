package flume

import "time"

// Meter measures streamed record cadence as ticks per second. One tick is
// recorded per processed record regardless of how much text the record
// carried, so the reported rate approximates server-side event cadence
// rather than an exact sub-word token count.
type Meter struct {
	now   func() time.Time
	start time.Time
	ticks int
}

// NewMeter returns a Meter whose clock starts immediately.
func NewMeter() *Meter {
	return newMeter(time.Now)
}

func newMeter(now func() time.Time) *Meter {
	return &Meter{now: now, start: now()}
}

// Tick records one processed record.
func (m *Meter) Tick() {
	m.ticks++
}

// Ticks returns the number of records processed so far.
func (m *Meter) Ticks() int {
	return m.ticks
}

// Rate returns ticks per elapsed second. Returns 0 when no time has
// elapsed yet, to guard against division by zero at call start.
func (m *Meter) Rate() float64 {
	elapsed := m.now().Sub(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.ticks) / elapsed
}
