// Package controller runs the host side of the bench: it bridges command
// bytes and status output between the caller and the device, which is
// either real hardware on a serial port or the in-process loopback bench.
package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"go.bug.st/serial"

	"github.com/quadsim/quadsim/monitor"
)

const defaultBaudRate = 115200

// Controller connects an input/output pair to the virtual encoder device
type Controller struct {
	cfg Config

	// port is nil in loopback mode
	port serial.Port

	// monitor is nil when capture is not configured
	monitor *monitor.Client
}

// New opens the configured transport
func New(cfg Config) (*Controller, error) {
	c := &Controller{cfg: cfg}

	if cfg.MonitorAddr != "" {
		c.monitor = monitor.NewClient(cfg.MonitorAddr)
	}

	portName := cfg.SerialPort
	if portName == SerialPortAuto {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, fmt.Errorf("error finding serial port: %w", err)
		}
		portName = ports[0]
	}
	if portName == "" || portName == SerialPortNone {
		return c, nil
	}

	baud := defaultBaudRate
	if cfg.BaudRate != "" {
		var err error
		baud, err = strconv.Atoi(cfg.BaudRate)
		if err != nil {
			return nil, fmt.Errorf("invalid baud rate %q: %w", cfg.BaudRate, err)
		}
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", portName, err)
	}
	c.port = port

	return c, nil
}

// Close releases the serial port if one is open
func (c *Controller) Close() error {
	if c.port == nil {
		return nil
	}
	return c.port.Close()
}

// Run shuttles bytes from in to the device and device output lines to out
// until ctx is done or either side closes. Status lines are also forwarded
// to the monitor client when capture is configured.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if c.port == nil {
		return c.runLoopback(ctx, in, out)
	}

	go func() {
		<-ctx.Done()
		c.port.Close()
	}()

	go func() {
		// command bytes flow one way; the device never acknowledges
		io.Copy(c.port, in)
	}()

	scanner := bufio.NewScanner(c.port)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Fprintln(out, line)
		c.record(ctx, line)
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from device: %w", err)
	}
	return nil
}

// record forwards a status line to the capture service. Capture failures
// never interrupt the bench.
func (c *Controller) record(ctx context.Context, line string) {
	if c.monitor == nil {
		return
	}
	status, ok := monitor.ParseStatus(line)
	if !ok {
		return
	}
	if err := c.monitor.Record(ctx, status); err != nil {
		fmt.Println("error recording sample:", err.Error())
	}
}
