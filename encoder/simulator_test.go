package encoder

import (
	"testing"
	"time"

	"github.com/quadsim/quadsim"
)

// recordPin remembers the last level it was driven to
type recordPin struct {
	level bool
	sets  int
}

func (p *recordPin) Set(level bool) {
	p.level = level
	p.sets++
}

func newTestSimulator(period time.Duration) (*Simulator, *recordPin, *recordPin) {
	pinA := &recordPin{}
	pinB := &recordPin{}
	sim := NewSimulator(SimulatorConfig{PinA: pinA, PinB: pinB, Period: period})
	return sim, pinA, pinB
}

// tickHard advances the simulator by exactly one step regardless of clocks
func tickHard(sim *Simulator, now *time.Time) {
	*now = now.Add(sim.Period())
	if !sim.Tick(*now) {
		panic("tick did not fire after a full period")
	}
}

func TestSimulatorForwardCycle(t *testing.T) {
	sim, _, _ := newTestSimulator(100 * time.Millisecond)
	now := time.Unix(0, 0)

	start := sim.Step()
	for range 4 {
		tickHard(sim, &now)
	}
	if sim.Step() != start {
		t.Errorf("4 forward ticks should return to step %d, got %d", start, sim.Step())
	}
}

func TestSimulatorReverseInvertsForward(t *testing.T) {
	sim, _, _ := newTestSimulator(100 * time.Millisecond)
	now := time.Unix(0, 0)

	start := sim.Step()
	for range 3 {
		tickHard(sim, &now)
	}
	sim.SetDirection(quadsim.Reverse)
	for range 3 {
		tickHard(sim, &now)
	}
	if sim.Step() != start {
		t.Errorf("3 forward + 3 reverse ticks should return to step %d, got %d", start, sim.Step())
	}
}

func TestSimulatorReverseWrapsAtZero(t *testing.T) {
	sim, _, _ := newTestSimulator(100 * time.Millisecond)
	now := time.Unix(0, 0)

	sim.SetDirection(quadsim.Reverse)
	tickHard(sim, &now)
	// decrementing step 0 must wrap to 3, not trap or go negative
	if sim.Step() != 3 {
		t.Errorf("reverse from step 0 should wrap to 3, got %d", sim.Step())
	}
}

func TestSimulatorSpeedAdjust(t *testing.T) {
	sim, _, _ := newTestSimulator(100 * time.Millisecond)

	sim.Slower()
	if sim.Period() != 150*time.Millisecond {
		t.Errorf("expected 150ms after Slower, got %s", sim.Period())
	}

	sim.Faster()
	sim.Faster()
	if sim.Period() != 50*time.Millisecond {
		t.Errorf("expected 50ms after two Faster, got %s", sim.Period())
	}

	// already at the floor: clamp, do not underflow
	sim.Faster()
	if sim.Period() != 50*time.Millisecond {
		t.Errorf("expected clamp at 50ms, got %s", sim.Period())
	}
}

func TestSimulatorPeriodDefaultsAndFloor(t *testing.T) {
	sim, _, _ := newTestSimulator(0)
	if sim.Period() != quadsim.DefaultPulsePeriod {
		t.Errorf("zero period should default to %s, got %s", quadsim.DefaultPulsePeriod, sim.Period())
	}

	sim, _, _ = newTestSimulator(10 * time.Millisecond)
	if sim.Period() != quadsim.MinPulsePeriod {
		t.Errorf("sub-floor period should clamp to %s, got %s", quadsim.MinPulsePeriod, sim.Period())
	}
}

func TestSimulatorScheduledTicks(t *testing.T) {
	// 250ms of elapsed time polled at 10ms granularity fires exactly two
	// 100ms ticks (at t=100 and t=200), leaving the simulator at step 2
	// with both lines high.
	sim, pinA, pinB := newTestSimulator(100 * time.Millisecond)
	start := time.Unix(0, 0)
	sim.lastTick = start

	ticks := 0
	for elapsed := time.Duration(0); elapsed <= 250*time.Millisecond; elapsed += 10 * time.Millisecond {
		if sim.Tick(start.Add(elapsed)) {
			ticks++
		}
	}

	if ticks != 2 {
		t.Errorf("expected exactly 2 ticks in 250ms, got %d", ticks)
	}
	if sim.Step() != 2 {
		t.Errorf("expected step 2, got %d", sim.Step())
	}
	if !pinA.level || !pinB.level {
		t.Errorf("expected both lines high at step 2, got A=%v B=%v", pinA.level, pinB.level)
	}
}

func TestSimulatorTickDrivesPins(t *testing.T) {
	sim, pinA, pinB := newTestSimulator(100 * time.Millisecond)
	now := time.Unix(0, 0)

	tickHard(sim, &now)
	if !pinA.level || pinB.level {
		t.Errorf("step 1 should drive (A=1, B=0), got A=%v B=%v", pinA.level, pinB.level)
	}
	if pinA.sets != 1 || pinB.sets != 1 {
		t.Errorf("both pins should be driven once per tick, got %d/%d", pinA.sets, pinB.sets)
	}
}
