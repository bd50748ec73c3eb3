package config

// MatchConfig is the root config for match.toml
type MatchConfig struct {
	Title      string        `toml:"title"`
	Display    DisplayConfig `toml:"display"`
	Arena      ArenaConfig   `toml:"arena"`
	Physics    PhysicsConfig `toml:"physics"`
	Rules      RulesConfig   `toml:"rules"`
	Camera     CameraConfig  `toml:"camera"`
	Keys       KeysConfig    `toml:"keys"`
	Background PropConfig    `toml:"background"`
	Props      []PropConfig  `toml:"props"`
}

type DisplayConfig struct {
	Scale      int  `toml:"scale"`
	TPS        int  `toml:"tps"`
	Fullscreen bool `toml:"fullscreen"`
}

// ArenaConfig sizes the logical canvas. Feet rest at Height - FloorPadding.
type ArenaConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FloorPadding float64 `toml:"floor_padding"`
}

type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	JumpVelocity float64 `toml:"jump_velocity"`
	MoveSpeed    float64 `toml:"move_speed"`
}

type RulesConfig struct {
	FullHealth      int `toml:"full_health"`
	AttackDamage    int `toml:"attack_damage"`
	AttackDelayMs   int `toml:"attack_delay_ms"`
	TimeLimitS      int `toml:"time_limit_s"`
	TimerIntervalMs int `toml:"timer_interval_ms"`
}

// CameraConfig selects the in-match camera and the attract-screen tour
type CameraConfig struct {
	Mode      string           `toml:"mode"` // "follow" or "none"
	MinRate   float64          `toml:"min_rate"`
	MaxRate   float64          `toml:"max_rate"`
	Tour      bool             `toml:"tour"`
	Keyframes []KeyframeConfig `toml:"keyframes"`
}

// KeyframeConfig is a tour pose; X and Y are fractions of the canvas size
type KeyframeConfig struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Rate       float64 `toml:"rate"`
	DurationMs int     `toml:"duration_ms"`
	Ease       string  `toml:"ease"`
}

// KeysConfig binds ebiten key names to actions
type KeysConfig struct {
	Start  []string `toml:"start"`
	Jump   []string `toml:"jump"`
	Left   []string `toml:"left"`
	Right  []string `toml:"right"`
	Attack []string `toml:"attack"`
	Debug  []string `toml:"debug"`
}

// Bindings returns the key names per action name
func (k KeysConfig) Bindings() map[string][]string {
	return map[string][]string{
		"start":  k.Start,
		"jump":   k.Jump,
		"left":   k.Left,
		"right":  k.Right,
		"attack": k.Attack,
		"debug":  k.Debug,
	}
}

// PropConfig is a decorative animated sprite
type PropConfig struct {
	Name        string  `toml:"name"`
	Image       string  `toml:"image"`
	Basis       string  `toml:"basis"`
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	Frames      int     `toml:"frames"`
	DurationMs  int     `toml:"duration_ms"`
	Scale       float64 `toml:"scale"`
	FrameWidth  int     `toml:"frame_width"`
	FrameHeight int     `toml:"frame_height"`
	FitCanvas   bool    `toml:"fit_canvas"`
	Color       string  `toml:"color"`
}
