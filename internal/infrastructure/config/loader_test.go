package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadMatch(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Arena.Width)
	assert.Equal(t, 576, cfg.Arena.Height)
	assert.Equal(t, 126.0, cfg.Arena.FloorPadding)
	assert.Equal(t, 0.2, cfg.Physics.Gravity)
	assert.Equal(t, -10.0, cfg.Physics.JumpVelocity)
	assert.Equal(t, 100, cfg.Rules.FullHealth)
	assert.Equal(t, 20, cfg.Rules.AttackDamage)
	assert.Equal(t, 100, cfg.Rules.AttackDelayMs)
	assert.Equal(t, 60, cfg.Rules.TimeLimitS)
	assert.Equal(t, "follow", cfg.Camera.Mode)
	assert.Len(t, cfg.Camera.Keyframes, 4)
	assert.Contains(t, cfg.Keys.Attack, "Space")
	assert.True(t, cfg.Background.FitCanvas)

	require.Len(t, cfg.Props, 1)
	assert.Equal(t, "shop", cfg.Props[0].Name)
	assert.Equal(t, "right_bottom", cfg.Props[0].Basis)
	assert.Equal(t, 2.5, cfg.Props[0].Scale)
}

func TestLoader_LoadFighters(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadFighters()
	require.NoError(t, err)

	assert.Equal(t, "samuraiMack", cfg.Player.Name)
	assert.Equal(t, 221.0, cfg.Player.X)
	assert.Equal(t, "kenji", cfg.Enemy.Name)
	assert.Equal(t, 733.0, cfg.Enemy.X)
	require.NotNil(t, cfg.Player.Hit)
	assert.Equal(t, -40.0, cfg.Player.Hit.Top)

	var attacks []AnimationConfig
	for _, a := range cfg.Player.Animations {
		if a.State == "attack" {
			attacks = append(attacks, a)
		}
	}
	require.Len(t, attacks, 2)
	assert.Equal(t, 6, attacks[0].Frames)
	require.Len(t, attacks[0].Attack, 2)
	assert.Equal(t, []int{4}, attacks[0].Attack[0].Frames)
	assert.Equal(t, 170.0, attacks[0].Attack[0].Right)
	assert.Equal(t, -30.0, attacks[0].Attack[1].Bottom)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Match)
	assert.NotNil(t, cfg.Fighters)
}

const minimalMatch = `
[arena]
width = 320
height = 240
floor_padding = 40

[physics]
gravity = 0.5
jump_velocity = -8.0
move_speed = 3.0

[rules]
full_health = 50
attack_damage = 10
time_limit_s = 10

[camera]
mode = "none"

[background]
image = "bg"
fit_canvas = true
`

func TestLoader_Defaults(t *testing.T) {
	fsys := fstest.MapFS{"match.toml": {Data: []byte(minimalMatch)}}

	cfg, err := NewFSLoader(fsys, "mem").LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Display.Scale)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 100, cfg.Rules.TimerIntervalMs)
	assert.Equal(t, "none", cfg.Camera.Mode)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "[arena\nwidth = 1", false},
		{"unknown key", minimalMatch + "\n[extra]\nfoo = 1\n", true},
		{"bad camera", strings.Replace(minimalMatch, `mode = "none"`, `mode = "orbit"`, 1), true},
		{"upward gravity", strings.Replace(minimalMatch, "gravity = 0.5", "gravity = -0.5", 1), true},
		{"floor outside arena", strings.Replace(minimalMatch, "floor_padding = 40", "floor_padding = 400", 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"match.toml": {Data: []byte(tt.data)}}

			_, err := NewFSLoader(fsys, "mem").LoadMatch()
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadFighters()
	assert.Error(t, err)
}

func TestFightersConfig_Validate(t *testing.T) {
	valid := FighterConfig{
		Name:        "a",
		FrameWidth:  10,
		FrameHeight: 10,
		Animations: []AnimationConfig{{
			State:  "attack",
			Image:  "a/attack",
			Frames: 4,
			Attack: []FrameRectConfig{{Frames: []int{1}, Right: 10}},
		}},
	}

	cfg := FightersConfig{Player: valid, Enemy: valid}
	assert.NoError(t, cfg.Validate())

	cfg.Enemy.Animations = []AnimationConfig{{State: "attack", Frames: 4, Attack: []FrameRectConfig{{Frames: []int{4}}}}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Enemy = valid
	cfg.Enemy.FrameWidth = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
