package battle

import (
	"math"
	"time"
)

// MeterMax is the top of the timing meter range.
const MeterMax = 100.0

// Meter is the oscillating timing indicator of the aiming phase. It
// ping-pongs between 0 and MeterMax at rate units per second, driven only
// by accumulated deltas.
type Meter struct {
	rate    float64
	elapsed time.Duration
}

// NewMeter returns a meter at 0 moving at rate units per second.
func NewMeter(rate float64) Meter {
	return Meter{rate: rate}
}

// Advance accumulates dt.
func (m *Meter) Advance(dt time.Duration) {
	if dt > 0 {
		m.elapsed += dt
	}
}

// Reset puts the meter back at 0.
func (m *Meter) Reset() {
	m.elapsed = 0
}

// Value returns the current position in [0, MeterMax].
func (m Meter) Value() float64 {
	return PingPong(m.elapsed.Seconds()*m.rate, MeterMax)
}

// PingPong folds t into a triangle wave between 0 and length.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = math.Mod(t, 2*length)
	if t < 0 {
		t += 2 * length
	}
	return length - math.Abs(t-length)
}
