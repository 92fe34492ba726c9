package ui

import (
	"fmt"
	"io"
	"time"
)

// controllerWrapper turns UI actions into single command bytes on the
// device's input stream. The protocol has no framing, so each write is
// exactly one byte.
type controllerWrapper struct {
	writer         io.Writer
	lastEventTimer *timer
}

func (c *controllerWrapper) Forward() {
	c.lastEventTimer.Set(time.Now())
	fmt.Fprint(c.writer, "F")
}

func (c *controllerWrapper) Reverse() {
	c.lastEventTimer.Set(time.Now())
	fmt.Fprint(c.writer, "R")
}

func (c *controllerWrapper) Faster() {
	fmt.Fprint(c.writer, "+")
}

func (c *controllerWrapper) Slower() {
	fmt.Fprint(c.writer, "-")
}

func (c *controllerWrapper) SetEdgeMode(label string) {
	if b, ok := edgeModeCommands[label]; ok {
		fmt.Fprintf(c.writer, "%c", b)
	}
}

func (c *controllerWrapper) SetPrescale(label string) {
	if b, ok := prescaleCommands[label]; ok {
		fmt.Fprintf(c.writer, "%c", b)
	}
}

var edgeModeCommands = map[string]byte{
	"B only":        '1',
	"A only":        '2',
	"Both channels": '3',
}

var prescaleCommands = map[string]byte{
	"1": '0',
	"4": '4',
}
