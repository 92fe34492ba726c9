package quadsim

import "time"

// PulsesPerRev is the number of quadrature edge counts per full mechanical
// revolution. The timer peripheral's reload register is fixed to this value,
// so one overflow event corresponds to one revolution.
const PulsesPerRev = 1024

const (
	// MinPulsePeriod is the floor for the simulator's pulse interval.
	// Speed-up requests below this clamp instead of underflowing.
	MinPulsePeriod = 50 * time.Millisecond

	// PulsePeriodStep is the delta applied by the '+' and '-' commands.
	PulsePeriodStep = 50 * time.Millisecond

	// DefaultPulsePeriod is the simulator interval at startup.
	DefaultPulsePeriod = 100 * time.Millisecond

	// StatusInterval is how often the status reporter emits a line.
	StatusInterval = time.Second
)

// Direction is the rotation direction of the virtual encoder
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "R"
	}
	return "F"
}

// EdgeMode selects which channel transitions the timer peripheral counts
type EdgeMode int

const (
	EdgeModeUnknown EdgeMode = iota
	EdgeModeB                // channel B edges only
	EdgeModeA                // channel A edges only
	EdgeModeBoth             // both channels (default)
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeModeB:
		return "B-only"
	case EdgeModeA:
		return "A-only"
	case EdgeModeBoth:
		return "Both"
	default:
		fallthrough
	case EdgeModeUnknown:
		return "Unknown"
	}
}
