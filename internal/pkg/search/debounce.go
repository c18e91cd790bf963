package search

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the debouncer waits for input to settle
// before running the query
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into one invocation after a quiet
// period. Superseded invocations are explicitly discarded rather than
// merely losing a timing race: the callback receives a liveness check it
// must consult before applying its result.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive delay falls back to the default.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// still-pending invocation. fn receives current, which reports whether
// this invocation is still the latest; results must only be applied while
// current() is true.
func (d *Debouncer) Trigger(fn func(current func() bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	mine := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		fn(func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return d.seq == mine
		})
	})
}

// Cancel discards any pending invocation and invalidates in-flight ones,
// e.g. when the search panel unmounts
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
