package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// timer is a mm:ss elapsed-time readout. The bench shows two: total run
// time and time since the last direction change.
type timer struct {
	startTime time.Time
	mtx       sync.Mutex
	text      *canvas.Text
	stop      chan struct{}
}

func newTimer() *timer {
	return &timer{
		text: canvas.NewText("00:00", nil),
		stop: make(chan struct{}),
	}
}

// Set restarts the timer from the given moment
func (t *timer) Set(start time.Time) {
	t.mtx.Lock()
	t.startTime = start
	t.mtx.Unlock()
}

func (t *timer) Stop() {
	close(t.stop)
}

// Go refreshes the readout once per second until stopped
func (t *timer) Go() {
	go func() {
		for range time.Tick(time.Second) {
			select {
			case <-t.stop:
				return
			default:
			}
			fyne.Do(func() {
				t.mtx.Lock()
				elapsed := time.Since(t.startTime)
				t.text.Text = fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
				t.text.Refresh()
				t.mtx.Unlock()
			})
		}
	}()
}
