package config

// FightersConfig is the root config for fighters.toml
type FightersConfig struct {
	Player FighterConfig `toml:"player"`
	Enemy  FighterConfig `toml:"enemy"`
}

// FighterConfig describes one fighter and its per-state animations.
// Area offsets are relative to the fighter center, authored facing right.
type FighterConfig struct {
	Name        string            `toml:"name"`
	X           float64           `toml:"x"`
	Y           float64           `toml:"y"`
	Facing      string            `toml:"facing"`
	Artwork     string            `toml:"artwork"` // direction the image strips face
	Color       string            `toml:"color"`
	FrameWidth  int               `toml:"frame_width"`
	FrameHeight int               `toml:"frame_height"`
	Scale       float64           `toml:"scale"`
	Hit         *RectConfig       `toml:"hit"`
	Animations  []AnimationConfig `toml:"animations"`
}

type AnimationConfig struct {
	State      string            `toml:"state"`
	Image      string            `toml:"image"`
	Frames     int               `toml:"frames"`
	DurationMs int               `toml:"duration_ms"`
	Repeat     int               `toml:"repeat"`
	Hit        *RectConfig       `toml:"hit"`
	HitFrames  []FrameRectConfig `toml:"hit_frames"`
	Attack     []FrameRectConfig `toml:"attack"`
}

type RectConfig struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// FrameRectConfig applies one rect to the listed frames
type FrameRectConfig struct {
	Frames []int   `toml:"frames"`
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Rect returns the rect part of the entry
func (f FrameRectConfig) Rect() RectConfig {
	return RectConfig{Left: f.Left, Top: f.Top, Right: f.Right, Bottom: f.Bottom}
}
