package controller

import (
	"errors"
	"fmt"

	"go.bug.st/serial/enumerator"
)

// ErrNoUSBSerial is returned when no USB serial ports are attached
var ErrNoUSBSerial = errors.New("no USB serial ports found")

// GetSerialPorts lists attached USB serial ports
func GetSerialPorts() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var result []string
	for _, port := range ports {
		if port.IsUSB {
			result = append(result, port.Name)
		}
	}
	if len(result) == 0 {
		return nil, ErrNoUSBSerial
	}

	return result, nil
}
