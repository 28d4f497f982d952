package query

import (
	"sync"
	"time"
)

// Debouncer runs only the last of a burst of calls, once the burst has been
// quiet for the configured delay. Each Trigger cancels the pending call, if
// any, and schedules the new one.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending chan bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn. The returned channel receives true once fn has run,
// or false if a later Trigger (or Cancel) superseded it first.
func (d *Debouncer) Trigger(fn func()) <-chan bool {
	done := make(chan bool, 1)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timer == timer {
			d.timer = nil
			d.pending = nil
		}
		d.mu.Unlock()

		fn()
		done <- true
	})
	d.timer = timer
	d.pending = done
	return done
}

// Cancel drops the pending call without scheduling a new one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer == nil {
		return
	}
	// Stop fails only if the callback already started; it will report on its own.
	if d.timer.Stop() {
		d.pending <- false
	}
	d.timer = nil
	d.pending = nil
}
