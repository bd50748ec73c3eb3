package main

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/samurai-duel/internal/application/game"
	"github.com/younwookim/samurai-duel/internal/application/replay"
	"github.com/younwookim/samurai-duel/internal/application/state"
	"github.com/younwookim/samurai-duel/internal/application/system"
	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/infrastructure/config"
	"github.com/younwookim/samurai-duel/internal/infrastructure/headless"
)

// replayResult summarizes a headless replay.
type replayResult struct {
	Frames       int
	Running      bool
	Outcome      state.Outcome
	PlayerHealth int
	EnemyHealth  int
}

func (r replayResult) String() string {
	status := r.Outcome.String()
	if r.Running {
		status = "match still running"
	}
	return fmt.Sprintf("%d frames: %s (player %d, enemy %d)", r.Frames, status, r.PlayerHealth, r.EnemyHealth)
}

// runReplay plays a recording file against a match without a window.
func runReplay(filename string, cfg *config.GameConfig, logger *log.Logger) (replayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replayResult{}, err
	}
	return playReplay(*data, cfg, logger)
}

// playReplay feeds every recorded frame at its recorded time. The match
// starts from the recording's start time so runs are repeatable.
func playReplay(data replay.ReplayData, cfg *config.GameConfig, logger *log.Logger) (replayResult, error) {
	replayer, err := replay.NewReplayer(data)
	if err != nil {
		return replayResult{}, err
	}
	mc, err := system.LoadMatch(cfg, &headless.Provider{})
	if err != nil {
		return replayResult{}, fmt.Errorf("failed to load match: %w", err)
	}

	start, err := time.Parse(time.RFC3339, data.StartTime)
	if err != nil {
		start = time.Unix(0, 0)
	}
	clk := clock.NewManual(start)
	session, err := game.NewSession(game.SessionDeps{
		Clock:   clk,
		Surface: &headless.Surface{},
		Logger:  logger,
	}, mc)
	if err != nil {
		return replayResult{}, err
	}

	for {
		f, ok := replayer.Next()
		if !ok {
			break
		}
		clk.Set(start.Add(f.Elapsed))
		session.Step(f.Events...)
	}

	m := session.Match()
	result := replayResult{
		Frames:  replayer.TotalFrames(),
		Running: m.State() == state.StateRunning,
		Outcome: m.Outcome(),
	}
	if p, e := m.Player(), m.Enemy(); p != nil && e != nil {
		result.PlayerHealth, result.EnemyHealth = p.Health(), e.Health()
	}
	session.Close()
	return result, nil
}
