package encoder

import (
	"fmt"
	"io"
	"time"

	"github.com/quadsim/quadsim"
)

// CountReader exposes the timer peripheral state the reporter prints
type CountReader interface {
	Count() uint32
	Direction() quadsim.Direction
}

// Reporter periodically emits a human-readable status line with the
// counting direction, accumulated revolutions, and the raw count register.
// Writes are fire-and-forget; a failing output stream is not handled.
type Reporter struct {
	timer CountReader
	revs  *RevCounter
	out   io.Writer

	interval time.Duration
	lastTick time.Time
}

// NewReporter creates a Reporter on the standard one-second interval
func NewReporter(timer CountReader, revs *RevCounter, out io.Writer) *Reporter {
	return &Reporter{
		timer:    timer,
		revs:     revs,
		out:      out,
		interval: quadsim.StatusInterval,
	}
}

// Tick emits a status line if the reporting interval has elapsed and
// reports whether it did. Same cooperative model as the simulator.
func (r *Reporter) Tick(now time.Time) bool {
	if now.Sub(r.lastTick) < r.interval {
		return false
	}
	r.lastTick = now

	fmt.Fprintf(r.out, "Direction:%s, Full Revs: %d, %d counts\n",
		r.timer.Direction(), r.revs.Count(), r.timer.Count())
	return true
}
