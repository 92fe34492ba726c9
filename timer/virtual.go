package timer

import "github.com/quadsim/quadsim"

// quadDecode maps a line-state transition to a count delta. Line states
// pack as B<<1|A; the index is prev<<2|cur. Transitions where both lines
// change (or neither) are invalid and contribute nothing, matching how a
// hardware quadrature counter rejects them.
var quadDecode = [16]int8{
	0, +1, -1, 0,
	-1, 0, 0, +1,
	+1, 0, 0, -1,
	0, -1, +1, 0,
}

// Virtual is an in-process Peripheral fed by two software pins. Wiring the
// pulse simulator's output pins to PinA/PinB closes the encoder loop
// entirely in software. All pin activity and the overflow handler run on
// the caller's goroutine; the handler fires synchronously from Set.
type Virtual struct {
	mode     quadsim.EdgeMode
	prescale uint32
	reload   uint32

	count  uint32
	presub uint32 // edges accumulated toward one prescaled count
	state  uint8  // current line levels, packed B<<1|A
	dir    quadsim.Direction

	onOverflow func()
	running    bool
}

// NewVirtual returns a Virtual timer with the default edge mode, prescale 1,
// and the standard pulses-per-revolution reload. Counting starts disabled.
func NewVirtual() *Virtual {
	return &Virtual{
		mode:     quadsim.EdgeModeBoth,
		prescale: 1,
		reload:   quadsim.PulsesPerRev,
	}
}

// VirtualPin is one of the timer's two input lines
type VirtualPin struct {
	t   *Virtual
	bit uint8
}

// Set drives the line level, feeding the quadrature decoder
func (p *VirtualPin) Set(level bool) {
	p.t.setLine(p.bit, level)
}

// PinA returns the channel A input line
func (t *Virtual) PinA() *VirtualPin {
	return &VirtualPin{t: t, bit: 0}
}

// PinB returns the channel B input line
func (t *Virtual) PinB() *VirtualPin {
	return &VirtualPin{t: t, bit: 1}
}

func (t *Virtual) setLine(bit uint8, level bool) {
	prev := t.state
	if level {
		t.state |= 1 << bit
	} else {
		t.state &^= 1 << bit
	}
	if !t.running || t.state == prev {
		return
	}

	delta := quadDecode[prev<<2|t.state]
	if delta == 0 {
		return
	}
	if delta > 0 {
		t.dir = quadsim.Forward
	} else {
		t.dir = quadsim.Reverse
	}

	// The edge-counting submode filters which channel's transitions count;
	// the direction flag above follows every valid transition regardless.
	switch t.mode {
	case quadsim.EdgeModeA:
		if bit != 0 {
			return
		}
	case quadsim.EdgeModeB:
		if bit != 1 {
			return
		}
	}

	t.presub++
	if t.presub < t.prescale {
		return
	}
	t.presub = 0
	t.advance(delta)
}

func (t *Virtual) advance(delta int8) {
	if delta > 0 {
		t.count++
		if t.count >= t.reload {
			t.count = 0
			t.fireOverflow()
		}
		return
	}
	if t.count == 0 {
		t.count = t.reload - 1
		t.fireOverflow()
		return
	}
	t.count--
}

func (t *Virtual) fireOverflow() {
	if t.onOverflow != nil {
		t.onOverflow()
	}
}

func (t *Virtual) ConfigureEncoder(mode quadsim.EdgeMode) {
	t.SetEdgeMode(mode)
	t.ResetCount()
}

func (t *Virtual) SetEdgeMode(mode quadsim.EdgeMode) {
	if mode == quadsim.EdgeModeUnknown {
		return
	}
	t.mode = mode
	t.presub = 0
}

func (t *Virtual) SetPrescale(p uint32) {
	if p < 1 {
		p = 1
	}
	t.prescale = p
	t.presub = 0
}

func (t *Virtual) SetReload(v uint32) {
	t.reload = v
	if t.count >= v {
		t.count = 0
	}
}

func (t *Virtual) ResetCount() {
	t.count = 0
	t.presub = 0
}

func (t *Virtual) OnOverflow(handler func()) {
	t.onOverflow = handler
}

func (t *Virtual) Start() {
	t.running = true
}

func (t *Virtual) Pause() {
	t.running = false
}

func (t *Virtual) Stop() {
	t.running = false
	t.ResetCount()
}

func (t *Virtual) Direction() quadsim.Direction {
	return t.dir
}

func (t *Virtual) Count() uint32 {
	return t.count
}

var _ Peripheral = (*Virtual)(nil)
