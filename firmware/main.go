//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/quadsim/quadsim/firmware/device"
)

func main() {
	// Give the USB serial console time to attach before the first status lines.
	time.Sleep(2 * time.Second)

	pinCfg := device.PinConfig{
		OutA: machine.GP16,
		OutB: machine.GP17,
		InA:  machine.GP14,
		InB:  machine.GP15,
	}

	simCfg := device.SimConfig{
		PulsePeriod: 100 * time.Millisecond,
	}

	d, err := device.New(pinCfg, simCfg)
	if err != nil {
		panic(err)
	}

	d.Run()
}
