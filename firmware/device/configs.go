//go:build tinygo

package device

import (
	"machine"
	"time"
)

// PinConfig assigns the board pins for the bench. The output pair carries
// the synthesized quadrature signal; the input pair is wired back to it
// (pull-up, as a real encoder's open-collector outputs would present) so
// the board can count its own pulses.
type PinConfig struct {
	OutA machine.Pin
	OutB machine.Pin
	InA  machine.Pin
	InB  machine.Pin
}

// SimConfig has the initial pulse-generator settings
type SimConfig struct {
	// PulsePeriod is the starting interval between quadrature steps
	PulsePeriod time.Duration
}
