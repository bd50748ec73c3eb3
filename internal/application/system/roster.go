package system

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/younwookim/samurai-duel/internal/application/camera"
	"github.com/younwookim/samurai-duel/internal/application/match"
	"github.com/younwookim/samurai-duel/internal/domain/character"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/physics"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
	"github.com/younwookim/samurai-duel/internal/infrastructure/config"
)

var defaultTint = color.RGBA{0x80, 0x80, 0x80, 0xff}

// LoadMatch converts the loaded configs into a match config. Every image is
// produced through p.
func LoadMatch(cfg *config.GameConfig, p sprite.Provider) (match.Config, error) {
	if cfg == nil || cfg.Match == nil || cfg.Fighters == nil {
		return match.Config{}, fmt.Errorf("incomplete game config: %w", config.ErrInvalid)
	}
	mc := cfg.Match

	canvas := Canvas(mc)
	bounds := physics.Bounds{
		Floor: canvas.Height - mc.Arena.FloorPadding,
		Width: canvas.Width,
	}

	background, err := LoadProp(mc.Background, canvas, sprite.ArtBackdrop, bounds.Floor, p)
	if err != nil {
		return match.Config{}, fmt.Errorf("failed to load background: %w", err)
	}
	props := make([]match.PropSpec, 0, len(mc.Props))
	for _, pc := range mc.Props {
		prop, err := LoadProp(pc, canvas, sprite.ArtProp, bounds.Floor, p)
		if err != nil {
			return match.Config{}, fmt.Errorf("failed to load prop %s: %w", pc.Name, err)
		}
		props = append(props, prop)
	}

	player, err := LoadFighter(cfg.Fighters.Player, p)
	if err != nil {
		return match.Config{}, fmt.Errorf("failed to load player: %w", err)
	}
	enemy, err := LoadFighter(cfg.Fighters.Enemy, p)
	if err != nil {
		return match.Config{}, fmt.Errorf("failed to load enemy: %w", err)
	}

	tour, err := LoadTour(mc.Camera, canvas)
	if err != nil {
		return match.Config{}, err
	}

	return match.Config{
		Canvas:        canvas,
		Bounds:        bounds,
		Tuning:        LoadTuning(mc),
		TimeLimit:     time.Duration(mc.Rules.TimeLimitS) * time.Second,
		TimerInterval: time.Duration(mc.Rules.TimerIntervalMs) * time.Millisecond,
		Camera:        match.CameraMode(mc.Camera.Mode),
		MinRate:       mc.Camera.MinRate,
		MaxRate:       mc.Camera.MaxRate,
		Tour:          tour,
		Background:    background,
		Props:         props,
		Player:        player,
		Enemy:         enemy,
	}, nil
}

// Canvas returns the logical arena size.
func Canvas(mc *config.MatchConfig) geom.Size {
	return geom.Size{Width: float64(mc.Arena.Width), Height: float64(mc.Arena.Height)}
}

// LoadTuning maps the physics and rules sections onto fighter tuning.
func LoadTuning(mc *config.MatchConfig) character.Tuning {
	return character.Tuning{
		Gravity:      mc.Physics.Gravity,
		JumpVelocity: mc.Physics.JumpVelocity,
		MoveSpeed:    mc.Physics.MoveSpeed,
		FullHealth:   mc.Rules.FullHealth,
		AttackDamage: mc.Rules.AttackDamage,
		AttackDelay:  time.Duration(mc.Rules.AttackDelayMs) * time.Millisecond,
	}
}

// LoadTour builds the attract-screen keyframes. Keyframe positions are
// fractions of the canvas. A tour with no keyframes uses the default pan.
func LoadTour(cc config.CameraConfig, canvas geom.Size) ([]camera.Keyframe, error) {
	if !cc.Tour {
		return nil, nil
	}
	if len(cc.Keyframes) == 0 {
		return camera.DefaultTour(canvas), nil
	}

	kfs := make([]camera.Keyframe, len(cc.Keyframes))
	for i, kc := range cc.Keyframes {
		fn, err := camera.EaseByName(kc.Ease)
		if err != nil {
			return nil, fmt.Errorf("camera keyframe %d: %w", i, err)
		}
		kfs[i] = camera.Keyframe{
			Origin:   geom.Vec{X: kc.X * canvas.Width, Y: kc.Y * canvas.Height},
			Rate:     kc.Rate,
			Duration: time.Duration(kc.DurationMs) * time.Millisecond,
			Ease:     fn,
		}
	}
	return kfs, nil
}

// LoadProp builds a decorative sprite. A fit_canvas prop is stretched over
// the whole canvas.
func LoadProp(pc config.PropConfig, canvas geom.Size, kind sprite.ArtKind, floor float64, p sprite.Provider) (match.PropSpec, error) {
	basis, err := sprite.ParseBasis(pc.Basis)
	if err != nil {
		return match.PropSpec{}, err
	}
	tint, err := ParseColor(pc.Color)
	if err != nil {
		return match.PropSpec{}, err
	}

	frames := max(pc.Frames, 1)
	fw, fh := pc.FrameWidth, pc.FrameHeight
	if pc.FitCanvas && (fw <= 0 || fh <= 0) {
		fw, fh = int(canvas.Width), int(canvas.Height)
	}

	art := sprite.Art{
		Key:         pc.Image,
		Kind:        kind,
		Frames:      frames,
		FrameWidth:  fw,
		FrameHeight: fh,
		Tint:        tint,
	}
	if kind == sprite.ArtBackdrop {
		art.Ground = floor * float64(fh) / canvas.Height
	}
	bitmap, err := p.Provide(art)
	if err != nil {
		return match.PropSpec{}, err
	}

	attr := sprite.ImageAttr{
		Source:            bitmap,
		FramesCount:       frames,
		AnimationDuration: time.Duration(pc.DurationMs) * time.Millisecond,
		Scale:             pc.Scale,
	}
	if pc.FitCanvas {
		size := canvas
		attr.Size = &size
	}

	name := pc.Name
	if name == "" {
		name = pc.Image
	}
	return match.PropSpec{
		Name:     name,
		Position: geom.Vec{X: pc.X, Y: pc.Y},
		Basis:    basis,
		Image:    attr,
	}, nil
}

// LoadFighter builds a fighter spawn spec and its archetype.
func LoadFighter(fc config.FighterConfig, p sprite.Provider) (match.FighterSpec, error) {
	facing, err := sprite.ParseDirection(fc.Facing)
	if err != nil {
		return match.FighterSpec{}, err
	}
	arch, err := LoadArchetype(fc, p)
	if err != nil {
		return match.FighterSpec{}, err
	}
	return match.FighterSpec{
		Name:      fc.Name,
		Start:     geom.Vec{X: fc.X, Y: fc.Y},
		Facing:    facing,
		Archetype: arch,
	}, nil
}

// LoadArchetype builds the per-state animations of a fighter. Variants keep
// their order in the file.
func LoadArchetype(fc config.FighterConfig, p sprite.Provider) (*character.Archetype, error) {
	artwork, err := sprite.ParseDirection(fc.Artwork)
	if err != nil {
		return nil, err
	}
	tint, err := ParseColor(fc.Color)
	if err != nil {
		return nil, err
	}
	scale := fc.Scale
	if scale <= 0 {
		scale = 1
	}
	frame := frameSpace{
		center: geom.Vec{X: float64(fc.FrameWidth) / 2, Y: float64(fc.FrameHeight) / 2},
		scale:  scale,
		sign:   artwork.Sign(),
	}

	arch := &character.Archetype{
		Name:   fc.Name,
		States: make(map[character.State][]character.Animation),
	}
	for i, ac := range fc.Animations {
		st, err := character.ParseState(ac.State)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}

		hit := loadAreas(ac.Hit, ac.HitFrames)
		if hit.All == nil && hit.Frames == nil && fc.Hit != nil {
			r := rect(*fc.Hit)
			hit.All = &r
		}
		attack := loadAreas(nil, ac.Attack)

		key := ac.Image
		if key == "" {
			key = fc.Name + "/" + ac.State
		}
		art := sprite.Art{
			Key:         key,
			Kind:        sprite.ArtFighter,
			Pose:        ac.State,
			Frames:      ac.Frames,
			FrameWidth:  fc.FrameWidth,
			FrameHeight: fc.FrameHeight,
			Tint:        tint,
		}
		if r, ok := hit.At(0); ok {
			art.Body = frame.local(r)
		}
		if len(attack.Frames) > 0 {
			art.Strikes = make(map[int]geom.Rect, len(attack.Frames))
			for n, r := range attack.Frames {
				art.Strikes[n] = frame.local(r)
			}
		}

		bitmap, err := p.Provide(art)
		if err != nil {
			return nil, fmt.Errorf("animation %d (%s): %w", i, ac.State, err)
		}

		arch.States[st] = append(arch.States[st], character.Animation{
			Image: sprite.ImageAttr{
				Source:            bitmap,
				FramesCount:       ac.Frames,
				AnimationDuration: time.Duration(ac.DurationMs) * time.Millisecond,
				RepeatAnimation:   ac.Repeat,
				Direction:         artwork,
				Scale:             scale,
			},
			Hit:    hit,
			Attack: attack,
		})
	}

	if err := arch.Validate(); err != nil {
		return nil, err
	}
	return arch, nil
}

func loadAreas(all *config.RectConfig, frames []config.FrameRectConfig) character.FrameAreas {
	var areas character.FrameAreas
	if all != nil {
		r := rect(*all)
		areas.All = &r
	}
	for _, fr := range frames {
		if areas.Frames == nil {
			areas.Frames = make(map[int]geom.Rect)
		}
		for _, n := range fr.Frames {
			areas.Frames[n] = rect(fr.Rect())
		}
	}
	return areas
}

func rect(rc config.RectConfig) geom.Rect {
	return geom.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}
}

// frameSpace maps center offsets, authored facing right in drawn pixels,
// into the pixels of one frame of a strip.
type frameSpace struct {
	center geom.Vec
	scale  float64
	sign   float64
}

func (f frameSpace) local(r geom.Rect) geom.Rect {
	return geom.Rect{
		Left:   f.center.X + f.sign*r.Left/f.scale,
		Top:    f.center.Y + r.Top/f.scale,
		Right:  f.center.X + f.sign*r.Right/f.scale,
		Bottom: f.center.Y + r.Bottom/f.scale,
	}.Normalize()
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Empty returns a neutral grey.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return defaultTint, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb: %w", s, config.ErrInvalid)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, config.ErrInvalid)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
