package config

import "fmt"

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

func (c *MatchConfig) applyDefaults() {
	if c.Display.Scale == 0 {
		c.Display.Scale = 1
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = 60
	}
	if c.Rules.TimerIntervalMs == 0 {
		c.Rules.TimerIntervalMs = 100
	}
	if c.Camera.Mode == "" {
		c.Camera.Mode = "follow"
	}
}

// Validate checks value ranges of match.toml
func (c *MatchConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return invalid("arena size %dx%d must be positive", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.FloorPadding < 0 || c.Arena.FloorPadding >= float64(c.Arena.Height) {
		return invalid("floor_padding %v must lie within the arena height", c.Arena.FloorPadding)
	}
	if c.Physics.Gravity <= 0 {
		return invalid("gravity must be positive")
	}
	if c.Physics.JumpVelocity >= 0 {
		return invalid("jump_velocity must be negative (up)")
	}
	if c.Physics.MoveSpeed <= 0 {
		return invalid("move_speed must be positive")
	}
	if c.Rules.FullHealth <= 0 || c.Rules.AttackDamage <= 0 {
		return invalid("full_health and attack_damage must be positive")
	}
	if c.Rules.AttackDelayMs < 0 {
		return invalid("attack_delay_ms must not be negative")
	}
	if c.Rules.TimeLimitS <= 0 || c.Rules.TimerIntervalMs <= 0 {
		return invalid("time_limit_s and timer_interval_ms must be positive")
	}

	switch c.Camera.Mode {
	case "follow", "none":
	default:
		return invalid("unknown camera mode %q", c.Camera.Mode)
	}
	if c.Camera.Mode == "follow" && (c.Camera.MinRate <= 0 || c.Camera.MaxRate < 1) {
		return invalid("follow camera needs min_rate > 0 and max_rate >= 1")
	}
	for i, kf := range c.Camera.Keyframes {
		if kf.Rate <= 0 || kf.DurationMs <= 0 {
			return invalid("camera keyframe %d needs a positive rate and duration_ms", i)
		}
	}

	if err := c.Background.validate(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i := range c.Props {
		if err := c.Props[i].validate(); err != nil {
			return fmt.Errorf("prop %d: %w", i, err)
		}
	}
	return nil
}

func (p *PropConfig) validate() error {
	if p.Image == "" {
		return invalid("image is required")
	}
	if p.Frames < 0 {
		return invalid("frames must not be negative")
	}
	if !p.FitCanvas && (p.FrameWidth <= 0 || p.FrameHeight <= 0) {
		return invalid("frame_width and frame_height are required unless fit_canvas is set")
	}
	return nil
}

// Validate checks value ranges of fighters.toml
func (c *FightersConfig) Validate() error {
	if err := c.Player.validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := c.Enemy.validate(); err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	return nil
}

func (f *FighterConfig) validate() error {
	if f.Name == "" {
		return invalid("name is required")
	}
	if f.FrameWidth <= 0 || f.FrameHeight <= 0 {
		return invalid("frame_width and frame_height must be positive")
	}
	if len(f.Animations) == 0 {
		return invalid("no animations")
	}
	for i, a := range f.Animations {
		if a.State == "" {
			return invalid("animation %d: state is required", i)
		}
		if a.Frames <= 0 {
			return invalid("animation %d (%s): frames must be positive", i, a.State)
		}
		if a.DurationMs < 0 || a.Repeat < 0 {
			return invalid("animation %d (%s): duration_ms and repeat must not be negative", i, a.State)
		}
		for _, fr := range append(append([]FrameRectConfig(nil), a.HitFrames...), a.Attack...) {
			for _, n := range fr.Frames {
				if n < 0 || n >= a.Frames {
					return invalid("animation %d (%s): area frame %d out of range", i, a.State, n)
				}
			}
		}
	}
	return nil
}
