package controller

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/quadsim/quadsim"
	"github.com/quadsim/quadsim/encoder"
	"github.com/quadsim/quadsim/firmware/commands"
	"github.com/quadsim/quadsim/timer"
)

const loopGranularity = 5 * time.Millisecond

var errNoByte = errors.New("no byte available")

// loopbackBench runs the same components the firmware runs, entirely
// in-process: simulator pins wired straight into the virtual timer.
// It implements commands.Controller so the firmware's command table
// drives it unchanged.
type loopbackBench struct {
	sim   *encoder.Simulator
	timer *timer.Virtual
	revs  *encoder.RevCounter
	input chan byte
}

func newLoopbackBench(in io.Reader) *loopbackBench {
	t := timer.NewVirtual()
	t.ConfigureEncoder(quadsim.EdgeModeBoth)
	t.SetReload(quadsim.PulsesPerRev)

	revs := &encoder.RevCounter{}
	t.OnOverflow(func() {
		revs.Overflow(t.Direction())
	})
	t.Start()

	b := &loopbackBench{
		sim: encoder.NewSimulator(encoder.SimulatorConfig{
			PinA: t.PinA(),
			PinB: t.PinB(),
		}),
		timer: t,
		revs:  revs,
		input: make(chan byte, 64),
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil {
				close(b.input)
				return
			}
			if n == 1 {
				b.input <- buf[0]
			}
		}
	}()

	return b
}

func (b *loopbackBench) Forward() { b.sim.SetDirection(quadsim.Forward) }
func (b *loopbackBench) Reverse() { b.sim.SetDirection(quadsim.Reverse) }

func (b *loopbackBench) SetEdgeMode(m quadsim.EdgeMode) { b.timer.SetEdgeMode(m) }
func (b *loopbackBench) SetPrescale(p uint32)           { b.timer.SetPrescale(p) }

func (b *loopbackBench) Faster() { b.sim.Faster() }
func (b *loopbackBench) Slower() { b.sim.Slower() }

func (b *loopbackBench) Debug() {
	println("dir=" + b.sim.Direction().String() +
		" step=" + string('0'+b.sim.Step()) +
		" period=" + b.sim.Period().String())
}

// ReadByte is the non-blocking poll the command loop expects
func (b *loopbackBench) ReadByte() (byte, error) {
	select {
	case c, ok := <-b.input:
		if !ok {
			return 0, io.EOF
		}
		return c, nil
	default:
		return 0, errNoByte
	}
}

// runLoopback is the firmware's cooperative main loop, minus the board
func (c *Controller) runLoopback(ctx context.Context, in io.Reader, out io.Writer) error {
	bench := newLoopbackBench(in)
	reporter := encoder.NewReporter(bench.timer, bench.revs, &recordingWriter{c: c, ctx: ctx, out: out})

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		commands.Poll(bench)
		now := time.Now()
		bench.sim.Tick(now)
		reporter.Tick(now)
		time.Sleep(loopGranularity)
	}
}

// recordingWriter tees reporter output to out and the capture service
type recordingWriter struct {
	c   *Controller
	ctx context.Context
	out io.Writer
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	n, err := w.out.Write(p)
	// reporter lines arrive one Write per line with a trailing newline
	if len(p) > 0 {
		w.c.record(w.ctx, string(p[:len(p)-1]))
	}
	return n, err
}
