package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/quadsim/quadsim/controller"
	"github.com/quadsim/quadsim/ui"
)

func main() {
	var listPorts bool
	var cfg controller.Config
	flag.StringVar(&cfg.SerialPort, "port", os.Getenv("QUADSIM_PORT"), "Serial port of the device, \"auto\" to pick the first USB port, or \"none\" for the in-process bench")
	flag.StringVar(&cfg.BaudRate, "baud", os.Getenv("QUADSIM_BAUD"), "Serial baud rate")
	flag.StringVar(&cfg.MonitorAddr, "monitor", os.Getenv("QUADSIM_MONITOR"), "Capture service address for status samples")
	flag.BoolVar(&listPorts, "list-ports", false, "List attached USB serial ports and exit")
	flag.Parse()

	if listPorts {
		ports, err := controller.GetSerialPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, port := range ports {
			fmt.Println(port)
		}
		return
	}

	if os.Getenv("ENABLE_UI") == "true" {
		runUI(cfg)
		return
	}

	runCLI(cfg)
}

func runUI(cfg controller.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := controller.New(cfg)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	r, w := io.Pipe()

	// read from Stdin also
	go func() {
		defer w.Close()
		io.Copy(w, os.Stdin)
	}()

	benchUI := ui.NewBenchUI()

	go func() {
		err = c.Run(ctx, r, io.MultiWriter(os.Stdout, benchUI))
		if err != nil {
			panic(err)
		}
	}()

	benchUI.Run(ctx, w)
	cancel()
}

func runCLI(cfg controller.Config) {
	c, err := controller.New(cfg)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	err = c.Run(context.Background(), os.Stdin, os.Stdout)
	if err != nil {
		panic(err)
	}
}
