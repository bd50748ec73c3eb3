package game

import (
	"log"

	"github.com/younwookim/samurai-duel/internal/application/match"
	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/input"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
	"github.com/younwookim/samurai-duel/internal/infrastructure/schedule"
)

// SessionDeps are the collaborators shared by window and headless runs.
type SessionDeps struct {
	Clock         clock.Clock
	Surface       sprite.Surface
	Elements      match.Elements
	Logger        *log.Logger
	OnDebugToggle func(show bool)
}

// Session owns a match together with its input bus and schedulers, and
// advances them one frame at a time.
type Session struct {
	match     *match.Match
	bus       *input.Bus
	frames    *schedule.Frames
	intervals *schedule.Intervals
}

// NewSession creates the match and starts the attract loop.
func NewSession(deps SessionDeps, cfg match.Config) (*Session, error) {
	s := &Session{
		bus:       input.NewBus(),
		frames:    schedule.NewFrames(),
		intervals: schedule.NewIntervals(deps.Clock),
	}

	m, err := match.New(match.Deps{
		Clock:         deps.Clock,
		Surface:       deps.Surface,
		Input:         s.bus,
		Frames:        s.frames,
		Intervals:     s.intervals,
		Elements:      deps.Elements,
		Logger:        deps.Logger,
		OnDebugToggle: deps.OnDebugToggle,
	}, cfg)
	if err != nil {
		return nil, err
	}
	s.match = m
	m.AnimateBackground()
	return s, nil
}

// Step runs one frame: due intervals, then input, then frame callbacks.
// The caller advances the clock first.
func (s *Session) Step(events ...input.Event) {
	s.intervals.Fire()
	s.bus.Publish(events...)
	s.frames.Pump()
}

// Match returns the running match controller.
func (s *Session) Match() *match.Match {
	return s.match
}

// Close ends any running match and drops the input handlers.
func (s *Session) Close() {
	s.match.Close()
}
