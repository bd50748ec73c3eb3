// Package clock provides the time sources used by animation, attack timing
// and the match countdown.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock on every call.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Frame samples a source clock once per frame so every reader in the same
// frame sees the same instant.
type Frame struct {
	source Clock
	now    time.Time
}

// NewFrame creates a frame clock over source and samples it once.
func NewFrame(source Clock) *Frame {
	return &Frame{source: source, now: source.Now()}
}

// Tick samples the source clock and returns the new frame time.
func (f *Frame) Tick() time.Time {
	f.now = f.source.Now()
	return f.now
}

// Now returns the time sampled by the last Tick.
func (f *Frame) Now() time.Time {
	return f.now
}

// Manual is a clock advanced explicitly, used for headless runs and tests.
type Manual struct {
	now time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.now = t
}
