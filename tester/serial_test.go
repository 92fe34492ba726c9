package main_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"go.bug.st/serial"
)

// Hardware-in-the-loop checks against a flashed board. Set QUADSIM_TEST_PORT
// to the device's serial port to enable them.

func testPort(t *testing.T) string {
	t.Helper()
	port := os.Getenv("QUADSIM_TEST_PORT")
	if port == "" {
		t.Skip("QUADSIM_TEST_PORT not set")
	}
	return port
}

func sendSerial(t *testing.T, portName, in string, readFor time.Duration) string {
	t.Helper()
	mode := &serial.Mode{
		BaudRate: 115200,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		t.Errorf("unexpected error opening serial connection: %v", err)
		return ""
	}
	defer port.Close()

	_, err = port.Write([]byte(in))
	if err != nil {
		t.Errorf("unexpected error writing serial: %v", err)
		return ""
	}

	var result []byte
	buf := make([]byte, 256)
	port.SetReadTimeout(200 * time.Millisecond)
	deadline := time.Now().Add(readFor)
	for time.Now().Before(deadline) {
		n, err := port.Read(buf)
		if err != nil {
			t.Errorf("unexpected error reading serial: %v", err)
			return ""
		}
		result = append(result, buf[:n]...)
	}
	return strings.Trim(string(result), "\x00")
}

func TestStatusLines(t *testing.T) {
	port := testPort(t)

	// the board reports once per second regardless of input
	out := sendSerial(t, port, "", 2500*time.Millisecond)
	if strings.Count(out, "counts") < 2 {
		t.Errorf("expected at least two status lines in 2.5s, got %q", out)
	}
	if !strings.Contains(out, "Full Revs:") {
		t.Errorf("expected revolution count in status output, got %q", out)
	}
}

func TestDirectionCommands(t *testing.T) {
	port := testPort(t)

	out := sendSerial(t, port, "R", 1500*time.Millisecond)
	if !strings.Contains(out, "Direction:R") {
		t.Errorf("expected reverse direction after 'R', got %q", out)
	}

	out = sendSerial(t, port, "F", 1500*time.Millisecond)
	if !strings.Contains(out, "Direction:F") {
		t.Errorf("expected forward direction after 'F', got %q", out)
	}
}

func TestUnknownBytesIgnored(t *testing.T) {
	port := testPort(t)

	// garbage must not disturb the status stream
	out := sendSerial(t, port, "xyz!?", 1500*time.Millisecond)
	if !strings.Contains(out, "counts") {
		t.Errorf("expected status lines to continue after garbage input, got %q", out)
	}
}
