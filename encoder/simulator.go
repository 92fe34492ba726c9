package encoder

import (
	"time"

	"github.com/quadsim/quadsim"
)

// Pin is a single digital output line. The firmware wraps machine.Pin;
// the virtual timer and tests provide software pins.
type Pin interface {
	Set(bool)
}

// SimulatorConfig wires the simulator to its two output lines
type SimulatorConfig struct {
	PinA Pin
	PinB Pin
	// Period is the interval between steps. Zero means the default,
	// values below the floor are clamped up to it.
	Period time.Duration
}

// Simulator synthesizes the electrical signature of a rotary encoder by
// walking two output lines through the quadrature Gray sequence. It is
// ticked cooperatively from the main loop and keeps no goroutines of its
// own, so a test can drive it with any clock it likes.
type Simulator struct {
	pinA Pin
	pinB Pin

	step      uint8
	direction quadsim.Direction
	period    time.Duration
	lastTick  time.Time
}

// NewSimulator creates a Simulator in the Forward direction at step 0
func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.Period == 0 {
		cfg.Period = quadsim.DefaultPulsePeriod
	}
	if cfg.Period < quadsim.MinPulsePeriod {
		cfg.Period = quadsim.MinPulsePeriod
	}

	return &Simulator{
		pinA:      cfg.PinA,
		pinB:      cfg.PinB,
		direction: quadsim.Forward,
		period:    cfg.Period,
	}
}

// Tick advances the simulator if a full period has elapsed since the last
// step, drives the output pins, and reports whether a step fired. Reverse
// steps rely on unsigned wraparound: decrementing step 0 yields 0xFF, which
// the 2-bit mask reduces to 3.
func (s *Simulator) Tick(now time.Time) bool {
	if now.Sub(s.lastTick) < s.period {
		return false
	}
	s.lastTick = now

	if s.direction == quadsim.Forward {
		s.step = (s.step + 1) & 0x03
	} else {
		s.step = (s.step - 1) & 0x03
	}

	a, b := StepLevels(s.step)
	s.pinA.Set(a)
	s.pinB.Set(b)
	return true
}

// SetDirection changes the rotation direction. It takes effect on the next tick.
func (s *Simulator) SetDirection(d quadsim.Direction) {
	s.direction = d
}

// Direction returns the current rotation direction
func (s *Simulator) Direction() quadsim.Direction {
	return s.direction
}

// Step returns the current 2-bit step index
func (s *Simulator) Step() uint8 {
	return s.step
}

// Period returns the current interval between steps
func (s *Simulator) Period() time.Duration {
	return s.period
}

// Faster shortens the pulse period by one step, clamped at the floor
func (s *Simulator) Faster() {
	s.period -= quadsim.PulsePeriodStep
	if s.period < quadsim.MinPulsePeriod {
		s.period = quadsim.MinPulsePeriod
	}
}

// Slower lengthens the pulse period by one step
func (s *Simulator) Slower() {
	s.period += quadsim.PulsePeriodStep
}
