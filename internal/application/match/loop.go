package match

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/younwookim/samurai-duel/internal/application/camera"
	"github.com/younwookim/samurai-duel/internal/application/state"
	"github.com/younwookim/samurai-duel/internal/domain/character"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// Start begins a match with fresh fighters. The first match frame is drawn
// by the next frame pump. It is a no-op while running.
func (m *Match) Start() error {
	if m.running() {
		return nil
	}

	player, enemy, err := m.spawn()
	if err != nil {
		return fmt.Errorf("failed to spawn fighters: %w", err)
	}
	character.Pair(player, enemy)
	m.player, m.enemy = player, enemy
	m.outcome = state.OutcomeNone

	m.show(true)
	if r := m.deps.Elements.Result; r != nil {
		r.SetText("")
	}
	m.unbindKeys = m.deps.Input.Subscribe(NewControls(player).Handle)
	m.startTimer()
	m.state = state.StateRunning
	m.round++
	m.applyEffector(m.matchEffector())

	m.logger.Printf("start game: %s vs %s", player.Name(), enemy.Name())
	round := m.round
	m.deps.Frames.RequestFrame(func() { m.animate(round) })
	return nil
}

func (m *Match) startTimer() {
	m.startedAt = m.deps.Clock.Now()
	m.setTimerText(strconv.Itoa(int(m.cfg.TimeLimit.Seconds())))
	m.cancelTimer = m.deps.Intervals.Every(m.cfg.TimerInterval, m.tick)
}

func (m *Match) tick() {
	if !m.running() {
		return
	}
	left := m.TimeLeft()
	m.setTimerText(strconv.Itoa(left))
	if left <= 0 {
		m.JudgeWinner()
		m.EndGame()
	}
}

// EndGame stops the match synchronously: input is unbound and the countdown
// canceled before any further frame runs. The attract loop resumes.
func (m *Match) EndGame() {
	if !m.running() {
		return
	}

	m.show(false)
	if m.unbindKeys != nil {
		m.unbindKeys()
		m.unbindKeys = nil
	}
	m.state = state.StateNotRunning
	if m.cancelTimer != nil {
		m.cancelTimer()
		m.cancelTimer = nil
	}
	m.setTimerText("")
	m.logger.Printf("end game")

	m.applyEffector(sprite.Identity)
	m.AnimateBackground()
}

// IsFinished reports whether either fighter is out of health.
func (m *Match) IsFinished() bool {
	if m.player == nil || m.enemy == nil {
		return true
	}
	return m.player.IsDead() || m.enemy.IsDead()
}

// JudgeWinner decides the outcome from the remaining health.
func (m *Match) JudgeWinner() state.Outcome {
	if m.player == nil || m.enemy == nil {
		return state.OutcomeNone
	}
	m.outcome = state.Judge(m.player.Health(), m.enemy.Health())
	m.logger.Printf("%s", m.outcome)
	if r := m.deps.Elements.Result; r != nil {
		r.SetText(m.outcome.Banner())
	}
	return m.outcome
}

// Animate draws one match frame and schedules the next while running.
func (m *Match) Animate() {
	m.animate(m.round)
}

func (m *Match) animate(round int) {
	if !m.running() || round != m.round {
		return
	}

	m.deps.Surface.Fill(color.Black)
	m.background.Update()
	for _, p := range m.props {
		p.Update()
	}
	m.player.Update()
	m.enemy.Update()
	if m.showAreas {
		m.drawAreas()
	}

	if m.IsFinished() {
		m.JudgeWinner()
		m.EndGame()
	}

	if m.running() {
		m.deps.Frames.RequestFrame(func() { m.animate(round) })
	}
}

// AnimateBackground queues the attract loop: backdrop and props only,
// panned by the tour when one is configured. It stops once a match runs.
func (m *Match) AnimateBackground() {
	if m.running() {
		return
	}
	m.attract++
	if m.tour != nil {
		m.tour.Restart()
		m.applyEffector(camera.NewEffector(m.tour.Movement))
	}
	gen := m.attract
	m.deps.Frames.RequestFrame(func() { m.animateBackground(gen) })
}

func (m *Match) animateBackground(gen int) {
	if m.running() || gen != m.attract {
		return
	}

	m.deps.Surface.Fill(color.Black)
	m.background.Update()
	for _, p := range m.props {
		p.Update()
	}

	m.deps.Frames.RequestFrame(func() { m.animateBackground(gen) })
}

func (m *Match) matchEffector() sprite.Effector {
	if m.cfg.Camera != CameraFollow {
		return sprite.Identity
	}
	return camera.NewEffector(camera.Follow(m.cfg.Canvas.Width, m.player, m.enemy, m.cfg.MinRate, m.cfg.MaxRate))
}

func (m *Match) applyEffector(e sprite.Effector) {
	m.background.SetEffector(e)
	for _, p := range m.props {
		p.SetEffector(e)
	}
	if m.player != nil {
		m.player.Sprite().SetEffector(e)
	}
	if m.enemy != nil {
		m.enemy.Sprite().SetEffector(e)
	}
}
