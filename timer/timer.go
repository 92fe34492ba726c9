// Package timer defines the hardware-timer capability the bench consumes:
// a counter peripheral configured in quadrature-encoder mode. Real targets
// back it with a silicon timer block; Virtual closes the loop in software
// so the bench runs without hardware.
package timer

import "github.com/quadsim/quadsim"

// Peripheral is a bounded hardware counter in quadrature-encoder mode.
// Configuration calls are assumed to succeed and return nothing; this
// mirrors how register-level peripheral setup behaves on target.
type Peripheral interface {
	// ConfigureEncoder puts the counter in encoder mode with the given
	// edge-counting submode and zeroes the count register.
	ConfigureEncoder(mode quadsim.EdgeMode)

	// SetEdgeMode switches the edge-counting submode without touching
	// the count register.
	SetEdgeMode(mode quadsim.EdgeMode)

	// SetPrescale divides counted edges by p. Values below 1 mean 1.
	SetPrescale(p uint32)

	// SetReload sets the overflow/auto-reload value: the count register
	// wraps in [0, v) and the overflow handler fires once per full
	// traversal in either direction.
	SetReload(v uint32)

	// ResetCount zeroes the raw count register.
	ResetCount()

	// OnOverflow registers the overflow handler. The handler runs in
	// interrupt context on real targets and synchronously here; either
	// way it may interleave with the main loop at arbitrary points.
	OnOverflow(handler func())

	// Start enables counting.
	Start()

	// Pause disables counting, preserving the count register.
	Pause()

	// Stop disables counting and zeroes the count register.
	Stop()

	// Direction reports the direction of the last counted movement.
	Direction() quadsim.Direction

	// Count reads the raw count register.
	Count() uint32
}
