// Package match runs a single two-fighter bout: it owns the fighters, the
// countdown, the camera and the attract loop shown between matches.
package match

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/samurai-duel/internal/application/camera"
	"github.com/younwookim/samurai-duel/internal/application/state"
	"github.com/younwookim/samurai-duel/internal/domain/character"
	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/input"
	"github.com/younwookim/samurai-duel/internal/domain/physics"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// Toggle shows or hides a screen element.
type Toggle interface {
	SetVisible(visible bool)
}

// TextSink displays a line of text.
type TextSink interface {
	SetText(text string)
}

// FrameScheduler runs a callback on the next frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// IntervalScheduler runs a callback repeatedly until canceled.
type IntervalScheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// Elements are the optional HUD sinks; nil fields are skipped.
type Elements struct {
	Indicators   Toggle
	StartScreen  Toggle
	Timer        TextSink
	Result       TextSink
	PlayerHealth character.HealthIndicator
	EnemyHealth  character.HealthIndicator
}

// Deps are the collaborators a match runs against.
type Deps struct {
	Clock     clock.Clock
	Surface   sprite.Surface
	Input     input.Source
	Frames    FrameScheduler
	Intervals IntervalScheduler
	Elements  Elements
	Logger    *log.Logger
	// OnDebugToggle is told when the area overlay is switched.
	OnDebugToggle func(show bool)
}

// CameraMode selects the in-match camera.
type CameraMode string

const (
	CameraFollow CameraMode = "follow"
	CameraNone   CameraMode = "none"
)

// FighterSpec is everything needed to spawn a fighter.
type FighterSpec struct {
	Name      string
	Start     geom.Vec
	Facing    sprite.Direction
	Archetype *character.Archetype
}

// PropSpec is a decorative sprite drawn behind the fighters.
type PropSpec struct {
	Name     string
	Position geom.Vec
	Basis    sprite.CoordinateBasis
	Image    sprite.ImageAttr
}

// Config holds the rules and content of a match.
type Config struct {
	Canvas        geom.Size
	Bounds        physics.Bounds
	Tuning        character.Tuning
	TimeLimit     time.Duration
	TimerInterval time.Duration
	Camera        CameraMode
	MinRate       float64
	MaxRate       float64
	// Tour pans the attract screen; empty disables it.
	Tour       []camera.Keyframe
	Background PropSpec
	Props      []PropSpec
	Player     FighterSpec
	Enemy      FighterSpec
	ShowAreas  bool
}

// Match is the match controller.
type Match struct {
	deps   Deps
	cfg    Config
	logger *log.Logger

	background *sprite.Sprite
	props      []*sprite.Sprite
	tour       *camera.Tour

	player *character.Character
	enemy  *character.Character

	state       state.MatchState
	startedAt   time.Time
	cancelTimer func()
	unsubscribe func()
	unbindKeys  func()
	round       int
	attract     int

	showAreas bool
	outcome   state.Outcome
}

// New validates the content by spawning both fighters once and subscribes
// the start and debug handler. The match starts NotRunning.
func New(deps Deps, cfg Config) (*Match, error) {
	switch {
	case deps.Clock == nil:
		return nil, errors.New("match clock is required")
	case deps.Surface == nil:
		return nil, errors.New("match surface is required")
	case deps.Input == nil:
		return nil, errors.New("match input is required")
	case deps.Frames == nil || deps.Intervals == nil:
		return nil, errors.New("match schedulers are required")
	}
	if cfg.TimeLimit < time.Second {
		return nil, fmt.Errorf("time limit %v is shorter than a second", cfg.TimeLimit)
	}
	if cfg.TimerInterval <= 0 {
		cfg.TimerInterval = 100 * time.Millisecond
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Match{
		deps:      deps,
		cfg:       cfg,
		logger:    logger,
		showAreas: cfg.ShowAreas,
	}

	var err error
	if m.background, err = m.newProp(cfg.Background); err != nil {
		return nil, err
	}
	for _, p := range cfg.Props {
		s, err := m.newProp(p)
		if err != nil {
			return nil, err
		}
		m.props = append(m.props, s)
	}
	if len(cfg.Tour) > 0 {
		if m.tour, err = camera.NewTour(deps.Clock, cfg.Tour); err != nil {
			return nil, err
		}
	}
	if _, _, err := m.spawn(); err != nil {
		return nil, err
	}

	m.show(false)
	m.unsubscribe = deps.Input.Subscribe(m.handleGlobal)
	return m, nil
}

func (m *Match) newProp(p PropSpec) (*sprite.Sprite, error) {
	s, err := sprite.New(sprite.Options{
		Surface:  m.deps.Surface,
		Clock:    m.deps.Clock,
		Canvas:   m.cfg.Canvas,
		Position: p.Position,
		Basis:    p.Basis,
		Image:    p.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", p.Name, err)
	}
	return s, nil
}

func (m *Match) newFighter(spec FighterSpec, health character.HealthIndicator) (*character.Character, error) {
	return character.New(character.Options{
		Name:      spec.Name,
		Surface:   m.deps.Surface,
		Clock:     m.deps.Clock,
		Canvas:    m.cfg.Canvas,
		Bounds:    m.cfg.Bounds,
		Position:  spec.Start,
		Direction: spec.Facing,
		Archetype: spec.Archetype,
		Tuning:    m.cfg.Tuning,
		Health:    health,
		Logger:    m.logger,
	})
}

func (m *Match) spawn() (*character.Character, *character.Character, error) {
	player, err := m.newFighter(m.cfg.Player, m.deps.Elements.PlayerHealth)
	if err != nil {
		return nil, nil, err
	}
	enemy, err := m.newFighter(m.cfg.Enemy, m.deps.Elements.EnemyHealth)
	if err != nil {
		return nil, nil, err
	}
	return player, enemy, nil
}

// Close drops the start and debug handler.
func (m *Match) Close() {
	if m.running() {
		m.EndGame()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Match) handleGlobal(ev input.Event) {
	if !ev.Pressed {
		return
	}
	switch ev.Action {
	case input.ActionStart:
		if m.running() {
			return
		}
		if err := m.Start(); err != nil {
			m.logger.Printf("failed to start match: %v", err)
		}
	case input.ActionDebug:
		m.showAreas = !m.showAreas
		if m.deps.OnDebugToggle != nil {
			m.deps.OnDebugToggle(m.showAreas)
		}
	}
}

func (m *Match) running() bool {
	return m.state == state.StateRunning
}

// State returns whether a match is in progress.
func (m *Match) State() state.MatchState { return m.state }

// Player returns the current player fighter, nil before the first match.
func (m *Match) Player() *character.Character { return m.player }

// Enemy returns the current enemy fighter, nil before the first match.
func (m *Match) Enemy() *character.Character { return m.enemy }

// Outcome returns the result of the last judged match.
func (m *Match) Outcome() state.Outcome { return m.outcome }

// ShowAreas reports whether the area overlay is on.
func (m *Match) ShowAreas() bool { return m.showAreas }

// TimeLeft returns the whole seconds left on the countdown.
func (m *Match) TimeLeft() int {
	if !m.running() {
		return 0
	}
	elapsed := m.deps.Clock.Now().Sub(m.startedAt)
	left := int(m.cfg.TimeLimit/time.Second) - int(elapsed/time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// show toggles between the fight HUD and the start screen.
func (m *Match) show(fighting bool) {
	if t := m.deps.Elements.Indicators; t != nil {
		t.SetVisible(fighting)
	}
	if t := m.deps.Elements.StartScreen; t != nil {
		t.SetVisible(!fighting)
	}
}

func (m *Match) setTimerText(s string) {
	if t := m.deps.Elements.Timer; t != nil {
		t.SetText(s)
	}
}
