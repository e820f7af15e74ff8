package services

import (
	"sync"
	"sync/atomic"
)

// Tracker counts in-flight requests. The busy indicator is active while the
// count is above zero, so overlapping operations cannot switch it off early.
type Tracker struct {
	n        atomic.Int64
	mu       sync.Mutex
	onChange func(active bool)
}

// NewTracker returns a tracker; onChange may be nil. It is called whenever
// the indicator flips, outside of any lock the caller holds.
func NewTracker(onChange func(active bool)) *Tracker {
	return &Tracker{onChange: onChange}
}

// Begin marks one request as in flight and returns the func that settles it.
// The returned func is idempotent, so it is safe to both call it explicitly
// and defer it.
func (t *Tracker) Begin() (done func()) {
	if t.n.Add(1) == 1 {
		t.notify()
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			if t.n.Add(-1) == 0 {
				t.notify()
			}
		})
	}
}

func (t *Tracker) Active() bool { return t.n.Load() > 0 }

func (t *Tracker) InFlight() int64 { return t.n.Load() }

// notify reports the current state rather than the transition that caused
// the call, so racing Begin/done pairs still end with the right value.
func (t *Tracker) notify() {
	if t.onChange == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange(t.Active())
}
