package search

import (
	"context"
	"sync"
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

// liveSlotIdle is how long a visitor's debounce slot survives without a
// keystroke before it is pruned
const liveSlotIdle = 5 * time.Minute

// LiveMatcher funnels keystroke-level queries through a per-visitor
// Debouncer so only the last query of a burst reaches the catalog store.
// Requests superseded by a newer keystroke return without a result.
type LiveMatcher struct {
	matcher *Matcher
	delay   time.Duration

	mu    sync.Mutex
	slots map[string]*liveSlot
}

type liveSlot struct {
	debouncer *Debouncer
	supersede chan struct{}
	lastUsed  time.Time
}

// NewLiveMatcher wraps a matcher with per-visitor debouncing. A
// non-positive delay falls back to the default quiet period.
func NewLiveMatcher(matcher *Matcher, delay time.Duration) *LiveMatcher {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &LiveMatcher{
		matcher: matcher,
		delay:   delay,
		slots:   make(map[string]*liveSlot),
	}
}

type liveOutcome struct {
	rows []models.RepairPrice
	err  error
}

// Search debounces the query for the given visitor and blocks until the
// burst settles. The boolean reports supersession: a newer keystroke
// arrived while this one waited and its result was discarded unseen.
func (lm *LiveMatcher) Search(ctx context.Context, visitor, query string) ([]models.RepairPrice, bool, error) {
	slot, mine := lm.claim(visitor)

	done := make(chan liveOutcome, 1)
	slot.debouncer.Trigger(func(current func() bool) {
		if !current() {
			return
		}
		rows, err := lm.matcher.Search(query)
		if !current() {
			// A newer keystroke arrived during the store call.
			return
		}
		done <- liveOutcome{rows: rows, err: err}
	})

	select {
	case out := <-done:
		return out.rows, false, out.err
	case <-mine:
		return nil, true, nil
	case <-ctx.Done():
		return nil, true, ctx.Err()
	}
}

// Forget drops a visitor's slot and cancels any pending query, e.g. when
// the visitor restarts the configurator flow
func (lm *LiveMatcher) Forget(visitor string) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	slot, ok := lm.slots[visitor]
	if !ok {
		return
	}
	slot.debouncer.Cancel()
	if slot.supersede != nil {
		close(slot.supersede)
		slot.supersede = nil
	}
	delete(lm.slots, visitor)
}

// claim takes over the visitor's slot for the calling request, waking any
// request still waiting on the previous keystroke
func (lm *LiveMatcher) claim(visitor string) (*liveSlot, chan struct{}) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.prune()

	slot, ok := lm.slots[visitor]
	if !ok {
		slot = &liveSlot{debouncer: NewDebouncer(lm.delay)}
		lm.slots[visitor] = slot
	}
	if slot.supersede != nil {
		close(slot.supersede)
	}
	slot.supersede = make(chan struct{})
	slot.lastUsed = time.Now()
	return slot, slot.supersede
}

// prune drops idle slots. Caller holds lm.mu.
func (lm *LiveMatcher) prune() {
	for key, slot := range lm.slots {
		if time.Since(slot.lastUsed) > liveSlotIdle {
			slot.debouncer.Cancel()
			delete(lm.slots, key)
		}
	}
}
