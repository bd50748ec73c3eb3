// Package schedule provides the frame and interval schedulers the match runs
// on. Both are pumped from the host loop, so callbacks always run on the
// game goroutine.
package schedule

import (
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/clock"
)

// Frames queues callbacks to run on the next frame.
type Frames struct {
	pending []func()
}

// NewFrames creates an empty frame queue.
func NewFrames() *Frames {
	return &Frames{}
}

// RequestFrame queues fn for the next Pump.
func (f *Frames) RequestFrame(fn func()) {
	f.pending = append(f.pending, fn)
}

// Pump runs the callbacks queued before the call and returns how many ran.
// Callbacks queued while pumping wait for the next Pump.
func (f *Frames) Pump() int {
	batch := f.pending
	f.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (f *Frames) Pending() int {
	return len(f.pending)
}

type timer struct {
	every    time.Duration
	next     time.Time
	fn       func()
	canceled bool
}

// Intervals runs repeating callbacks when Fire observes they are due.
type Intervals struct {
	clock  clock.Clock
	timers []*timer
}

// NewIntervals creates an interval scheduler reading clk.
func NewIntervals(clk clock.Clock) *Intervals {
	return &Intervals{clock: clk}
}

// Every runs fn every d, first at now+d. The returned function cancels it;
// a canceled timer never fires again, even later in the same Fire.
func (i *Intervals) Every(d time.Duration, fn func()) func() {
	if d <= 0 {
		d = time.Millisecond
	}
	t := &timer{every: d, next: i.clock.Now().Add(d), fn: fn}
	i.timers = append(i.timers, t)
	return func() { t.canceled = true }
}

// Fire runs each due timer once. A timer that fell behind is rescheduled
// from now rather than fired repeatedly to catch up.
func (i *Intervals) Fire() {
	now := i.clock.Now()
	for _, t := range append([]*timer(nil), i.timers...) {
		if t.canceled || now.Before(t.next) {
			continue
		}
		t.next = t.next.Add(t.every)
		if !t.next.After(now) {
			t.next = now.Add(t.every)
		}
		t.fn()
	}

	active := i.timers[:0]
	for _, t := range i.timers {
		if !t.canceled {
			active = append(active, t)
		}
	}
	i.timers = active
}

// Len returns the number of live timers.
func (i *Intervals) Len() int {
	n := 0
	for _, t := range i.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}
