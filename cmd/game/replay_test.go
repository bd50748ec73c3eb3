package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/samurai-duel/internal/application/replay"
	"github.com/younwookim/samurai-duel/internal/application/state"
	"github.com/younwookim/samurai-duel/internal/domain/input"
)

const frameStep = 16 * time.Millisecond

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "samuraiMack", cfg.Fighters.Player.Name)

	dirCfg, err := loadConfig("configs")
	require.NoError(t, err)
	assert.Equal(t, cfg, dirCfg)
}

func TestApplyCamera(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	require.NoError(t, applyCamera(cfg, ""))
	assert.Equal(t, "follow", cfg.Match.Camera.Mode)

	require.NoError(t, applyCamera(cfg, "none"))
	assert.Equal(t, "none", cfg.Match.Camera.Mode)

	assert.Error(t, applyCamera(cfg, "orbit"))
	assert.Equal(t, "none", cfg.Match.Camera.Mode, "a rejected mode is rolled back")
}

func TestPlayReplay_TimeoutDraw(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	frames := int(61*time.Second/frameStep) + 1
	data := replay.CreateTestReplayData(frames, frameStep, map[int][]input.Event{
		0: {input.Press(input.ActionStart)},
		1: {input.Release(input.ActionStart)},
	})

	result, err := playReplay(data, cfg, discardLogger())
	require.NoError(t, err)

	assert.False(t, result.Running)
	assert.Equal(t, state.OutcomeDraw, result.Outcome)
	assert.Equal(t, 100, result.PlayerHealth)
	assert.Equal(t, 100, result.EnemyHealth)
}

func TestPlayReplay_Knockout(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	events := map[int][]input.Event{
		0:   {input.Press(input.ActionStart)},
		1:   {input.Release(input.ActionStart)},
		100: {input.Press(input.ActionRight)},
		180: {input.Release(input.ActionRight)},
	}
	// five swings, each one given time to finish
	for i := 0; i < 5; i++ {
		f := 200 + i*50
		events[f] = []input.Event{input.Press(input.ActionAttack)}
		events[f+1] = []input.Event{input.Release(input.ActionAttack)}
	}
	data := replay.CreateTestReplayData(500, frameStep, events)

	result, err := playReplay(data, cfg, discardLogger())
	require.NoError(t, err)

	assert.False(t, result.Running)
	assert.Equal(t, state.OutcomePlayerWin, result.Outcome)
	assert.Equal(t, 100, result.PlayerHealth)
	assert.Equal(t, 0, result.EnemyHealth)
	assert.Equal(t, "500 frames: player win (player 100, enemy 0)", result.String())
}

func TestPlayReplay_Unfinished(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	data := replay.CreateTestReplayData(10, frameStep, map[int][]input.Event{
		0: {input.Press(input.ActionStart)},
	})
	result, err := playReplay(data, cfg, discardLogger())
	require.NoError(t, err)

	assert.True(t, result.Running)
	assert.Contains(t, result.String(), "match still running")
}

func TestRunReplay_File(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	_, err = runReplay(filepath.Join(t.TempDir(), "missing.json"), cfg, discardLogger())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"frames":[{"t":5},{"t":1}]}`), 0o600))
	_, err = runReplay(path, cfg, discardLogger())
	assert.Error(t, err, "frames out of order")
}

func TestStartHint(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Press Space to start", startHint(cfg.Match.Keys))
}
