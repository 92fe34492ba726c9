package controller

import "os"

// SerialPortNone selects the in-process loopback bench instead of a
// serial-attached device.
const SerialPortNone = "none"

// SerialPortAuto picks the first USB serial port found.
const SerialPortAuto = "auto"

// Config selects the device transport and optional telemetry capture
type Config struct {
	// SerialPort is a device path, SerialPortAuto, or SerialPortNone.
	// Empty behaves like SerialPortNone.
	SerialPort string
	BaudRate   string

	// MonitorAddr is the capture service base URL. Empty disables capture.
	MonitorAddr string
}

// NewFromEnv builds a Controller from QUADSIM_PORT, QUADSIM_BAUD, and
// QUADSIM_MONITOR
func NewFromEnv() (*Controller, error) {
	cfg := Config{
		SerialPort:  os.Getenv("QUADSIM_PORT"),
		BaudRate:    os.Getenv("QUADSIM_BAUD"),
		MonitorAddr: os.Getenv("QUADSIM_MONITOR"),
	}
	return New(cfg)
}
