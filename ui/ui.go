// Package ui is a small bench window: live status readout plus controls
// that emit the same single-byte commands a serial terminal would.
package ui

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/quadsim/quadsim/monitor"
)

// BenchUI shows live device status and sends commands. It implements
// io.Writer so the controller can tee device output straight into it.
type BenchUI struct {
	mtx sync.Mutex
	buf []byte

	direction binding.String
	revs      binding.String
	count     binding.String
}

func NewBenchUI() *BenchUI {
	ui := &BenchUI{
		direction: binding.NewString(),
		revs:      binding.NewString(),
		count:     binding.NewString(),
	}
	ui.direction.Set("-")
	ui.revs.Set("-")
	ui.count.Set("-")
	return ui
}

// Write consumes the device output stream, picking status lines out of it
// and updating the readout. Non-status lines (help, debug) pass through
// untouched by simply being ignored here.
func (ui *BenchUI) Write(p []byte) (int, error) {
	ui.mtx.Lock()
	defer ui.mtx.Unlock()

	ui.buf = append(ui.buf, p...)
	for {
		nl := -1
		for i, b := range ui.buf {
			if b == '\n' {
				nl = i
				break
			}
		}
		if nl < 0 {
			break
		}
		line := string(ui.buf[:nl])
		ui.buf = ui.buf[nl+1:]

		status, ok := monitor.ParseStatus(line)
		if !ok {
			continue
		}
		ui.direction.Set(status.Direction)
		ui.revs.Set(strconv.Itoa(status.Revolutions))
		ui.count.Set(strconv.FormatUint(uint64(status.Count), 10))
	}
	return len(p), nil
}

// Run opens the bench window and blocks until it closes or ctx is done.
// Commands are written to w as single bytes.
func (ui *BenchUI) Run(ctx context.Context, w io.Writer) {
	application := app.New()
	window := application.NewWindow("Encoder Bench")

	runTimer := newTimer()
	lastEventTimer := newTimer()
	runTimer.Set(time.Now())
	lastEventTimer.Set(time.Now())
	runTimer.Go()
	lastEventTimer.Go()

	controller := &controllerWrapper{writer: w, lastEventTimer: lastEventTimer}

	statusCard := widget.NewCard("Status", "", container.NewGridWithColumns(2,
		widget.NewLabel("Direction:"),
		widget.NewLabelWithData(ui.direction),
		widget.NewLabel("Full Revs:"),
		widget.NewLabelWithData(ui.revs),
		widget.NewLabel("Counts:"),
		widget.NewLabelWithData(ui.count),
	))

	directionButtons := container.NewGridWithColumns(2,
		widget.NewButton("Forward", controller.Forward),
		widget.NewButton("Reverse", controller.Reverse),
	)

	speedButtons := container.NewGridWithColumns(2,
		widget.NewButton("Slower", controller.Slower),
		widget.NewButton("Faster", controller.Faster),
	)

	edgeModeSelect := widget.NewSelect(
		[]string{"Both channels", "A only", "B only"},
		controller.SetEdgeMode,
	)
	edgeModeSelect.SetSelectedIndex(0)

	prescaleSelect := widget.NewSelect(
		[]string{"1", "4"},
		controller.SetPrescale,
	)
	prescaleSelect.SetSelectedIndex(0)

	contentContainer := container.NewVBox(
		container.NewHBox(
			container.NewPadded(runTimer.text),
			layout.NewSpacer(),
			container.NewPadded(lastEventTimer.text),
		),
		statusCard,
		directionButtons,
		speedButtons,
		container.NewGridWithColumns(2,
			widget.NewLabel("Edge mode:"),
			edgeModeSelect,
		),
		container.NewGridWithColumns(2,
			widget.NewLabel("Prescale:"),
			prescaleSelect,
		),
	)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.SetContent(contentContainer)
	window.Resize(fyne.NewSize(320, 360))
	window.ShowAndRun()

	runTimer.Stop()
	lastEventTimer.Stop()
}
