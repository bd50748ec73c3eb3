// Package game provides the ebiten host that drives a match session.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/samurai-duel/internal/domain/input"
)

// Ticker samples the frame time.
type Ticker interface {
	Tick() time.Time
}

// Poller returns this frame's input transitions.
type Poller interface {
	Poll() []input.Event
}

// InputRecorder receives every frame's input.
type InputRecorder interface {
	RecordFrame(events []input.Event)
}

// Canvas is the offscreen image the match draws into.
type Canvas interface {
	Blit(screen *ebiten.Image)
}

// Overlay draws on top of the canvas.
type Overlay interface {
	Draw(screen *ebiten.Image)
}

// Options configure the host. Recorder and HUD are optional.
type Options struct {
	Clock    Ticker
	Session  *Session
	Input    Poller
	Recorder InputRecorder
	Canvas   Canvas
	HUD      Overlay
	ScreenW  int
	ScreenH  int
}

// Game implements ebiten.Game over a match session.
type Game struct {
	opts  Options
	ticks int
}

// New creates a host.
func New(opts Options) (*Game, error) {
	switch {
	case opts.Clock == nil:
		return nil, errors.New("game clock is required")
	case opts.Session == nil:
		return nil, errors.New("game session is required")
	case opts.Input == nil:
		return nil, errors.New("game input is required")
	case opts.Canvas == nil:
		return nil, errors.New("game canvas is required")
	}
	return &Game{opts: opts}, nil
}

// Update advances the session by one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.opts.Clock.Tick()
	events := g.opts.Input.Poll()
	if g.opts.Recorder != nil {
		g.opts.Recorder.RecordFrame(events)
	}
	g.opts.Session.Step(events...)
	g.ticks++
	return nil
}

// Draw blits the canvas and the HUD.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.opts.Canvas.Blit(screen)
	if g.opts.HUD != nil {
		g.opts.HUD.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.ScreenW, g.opts.ScreenH
}

// Ticks returns the number of updates run.
func (g *Game) Ticks() int {
	return g.ticks
}
