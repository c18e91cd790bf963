package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired int32
	var last atomic.Value

	for _, query := range []string{"i", "ip", "iph", "iphone"} {
		query := query
		d.Trigger(func(current func() bool) {
			if !current() {
				return
			}
			atomic.AddInt32(&fired, 1)
			last.Store(query)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.Equal(t, "iphone", last.Load())
}

func TestDebouncerCancelDiscardsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired int32
	d.Trigger(func(current func() bool) {
		if !current() {
			return
		}
		atomic.AddInt32(&fired, 1)
	})
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestDebouncerSupersededInvocationNotCurrent(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	done := make(chan bool, 1)
	d.Trigger(func(current func() bool) {
		// A newer trigger arrived before this callback ran; the liveness
		// check must report stale.
		done <- current()
	})
	d.Trigger(func(current func() bool) {})

	select {
	case wasCurrent := <-done:
		assert.False(t, wasCurrent)
	case <-time.After(200 * time.Millisecond):
		// The superseded timer was stopped before firing, which is the
		// other legal way to discard it.
	}

	d.Cancel()
}

func TestNewDebouncerDefaultsQuietPeriod(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultQuietPeriod, d.delay)
}
