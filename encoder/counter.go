package encoder

import (
	"sync/atomic"

	"github.com/quadsim/quadsim"
)

// RevCounter accumulates whole encoder revolutions beyond the timer's
// bounded count register. Overflow runs in the timer's overflow-handler
// context, which may preempt the main loop, so the counter is the one
// piece of state shared across that boundary and every access is atomic.
// The count wraps per int32; accumulated revolutions are unbounded over
// the device lifetime.
type RevCounter struct {
	n atomic.Int32
}

// Overflow records one full traversal of the timer's count register,
// incrementing Forward and decrementing Reverse. Called exactly once per
// overflow event.
func (r *RevCounter) Overflow(dir quadsim.Direction) {
	if dir == quadsim.Reverse {
		r.n.Add(-1)
		return
	}
	r.n.Add(1)
}

// Count returns the accumulated revolution count
func (r *RevCounter) Count() int32 {
	return r.n.Load()
}
