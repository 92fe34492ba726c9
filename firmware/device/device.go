//go:build tinygo

package device

import (
	"errors"
	"machine"
	"time"

	"github.com/quadsim/quadsim"
	"github.com/quadsim/quadsim/encoder"
	"github.com/quadsim/quadsim/firmware/commands"
	"github.com/quadsim/quadsim/timer"

	"tinygo.org/x/drivers/encoders"
)

const loopGranularity = 5 * time.Millisecond

// teePin drives a board pin and the virtual timer's matching input line
// together, so the counted signal is exactly what leaves the board.
type teePin struct {
	hw   machine.Pin
	virt *timer.VirtualPin
}

func (p teePin) Set(level bool) {
	p.hw.Set(level)
	p.virt.Set(level)
}

// Device is the virtual encoder bench: the pulse simulator, the timer
// peripheral counting its output, the revolution counter fed by timer
// overflows, and the status reporter. It implements commands.Controller.
type Device struct {
	sim      *encoder.Simulator
	timer    *timer.Virtual
	revs     *encoder.RevCounter
	reporter *encoder.Reporter

	// hwenc reads the loopback input pins independently of the timer
	// peripheral, as a cross-check that the pulses look like a real
	// encoder to a third party.
	hwenc *encoders.QuadratureDevice
}

// New configures the pins and wires the bench together. The timer starts
// counting immediately; the simulator starts on the first Run loop tick.
func New(pinCfg PinConfig, simCfg SimConfig) (Device, error) {
	pinCfg.OutA.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinCfg.OutB.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinCfg.InA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinCfg.InB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	t := timer.NewVirtual()
	t.ConfigureEncoder(quadsim.EdgeModeBoth)
	t.SetReload(quadsim.PulsesPerRev)

	revs := &encoder.RevCounter{}
	t.OnOverflow(func() {
		revs.Overflow(t.Direction())
	})
	t.Start()

	sim := encoder.NewSimulator(encoder.SimulatorConfig{
		PinA:   teePin{hw: pinCfg.OutA, virt: t.PinA()},
		PinB:   teePin{hw: pinCfg.OutB, virt: t.PinB()},
		Period: simCfg.PulsePeriod,
	})

	hwenc := encoders.NewQuadratureViaInterrupt(pinCfg.InA, pinCfg.InB)
	err := hwenc.Configure(encoders.QuadratureConfig{Precision: 4})
	if err != nil {
		return Device{}, errors.New("error configuring quadrature reader: " + err.Error())
	}

	return Device{
		sim:      sim,
		timer:    t,
		revs:     revs,
		reporter: encoder.NewReporter(t, revs, machine.Serial),
		hwenc:    hwenc,
	}, nil
}

// Run is the cooperative main loop: drain at most one serial byte, tick
// the simulator, tick the reporter. Nothing blocks; the sleep only keeps
// the poll granularity well under the 50ms pulse-period floor.
func (d *Device) Run() {
	for {
		commands.Poll(d)
		now := time.Now()
		d.sim.Tick(now)
		d.reporter.Tick(now)
		time.Sleep(loopGranularity)
	}
}

// Forward sets the simulated rotation direction forward
func (d *Device) Forward() {
	d.sim.SetDirection(quadsim.Forward)
}

// Reverse sets the simulated rotation direction to reverse
func (d *Device) Reverse() {
	d.sim.SetDirection(quadsim.Reverse)
}

// SetEdgeMode reconfigures the timer's edge-counting submode
func (d *Device) SetEdgeMode(m quadsim.EdgeMode) {
	d.timer.SetEdgeMode(m)
}

// SetPrescale reconfigures the timer's prescale factor
func (d *Device) SetPrescale(p uint32) {
	d.timer.SetPrescale(p)
}

// Faster speeds the pulse generator up by one 50ms step
func (d *Device) Faster() {
	d.sim.Faster()
}

// Slower slows the pulse generator down by one 50ms step
func (d *Device) Slower() {
	d.sim.Slower()
}

// Debug prints the bench internals, including the independent quadrature
// reader's position for comparison against the timer count
func (d *Device) Debug() {
	println("dir=" + d.sim.Direction().String() +
		" step=" + string('0'+d.sim.Step()) +
		" period=" + d.sim.Period().String())
	println("timer:", d.timer.Count(), "revs:", d.revs.Count(), "reader:", d.hwenc.Position())
}

func (d *Device) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}
