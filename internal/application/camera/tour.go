package camera

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

// Keyframe is a camera pose reached Duration after the previous one.
type Keyframe struct {
	Origin   geom.Vec
	Rate     float64
	Duration time.Duration
	// Ease shapes the approach; nil means linear.
	Ease ease.TweenFunc
}

// DefaultTour returns the attract-screen pan over a canvas.
func DefaultTour(canvas geom.Size) []Keyframe {
	return []Keyframe{
		{Origin: geom.Vec{X: canvas.Width, Y: canvas.Height}, Rate: 1.2, Duration: 2 * time.Second},
		{Origin: geom.Vec{}, Rate: 1, Duration: 2 * time.Second},
		{Origin: geom.Vec{X: canvas.Width / 2, Y: canvas.Height / 2}, Rate: 0.9, Duration: 2 * time.Second},
		{Origin: geom.Vec{}, Rate: 1, Duration: 2 * time.Second},
	}
}

type segment struct {
	start    time.Duration
	duration time.Duration
	x, y     *gween.Tween
	rate     *gween.Tween
}

// Tour loops through keyframes, interpolating from each keyframe to the
// next. The loop is driven by the clock, so it is deterministic.
type Tour struct {
	clock    clock.Clock
	start    time.Time
	segments []segment
	total    time.Duration
}

// NewTour creates a tour starting now.
func NewTour(clk clock.Clock, keyframes []Keyframe) (*Tour, error) {
	if len(keyframes) == 0 {
		return nil, errors.New("camera tour needs at least one keyframe")
	}

	t := &Tour{clock: clk, start: clk.Now()}
	prev := keyframes[len(keyframes)-1]
	for i, kf := range keyframes {
		if kf.Duration <= 0 {
			return nil, fmt.Errorf("camera tour keyframe %d: duration must be positive", i)
		}
		fn := kf.Ease
		if fn == nil {
			fn = ease.Linear
		}
		d := float32(kf.Duration.Seconds())
		t.segments = append(t.segments, segment{
			start:    t.total,
			duration: kf.Duration,
			x:        gween.New(float32(prev.Origin.X), float32(kf.Origin.X), d, fn),
			y:        gween.New(float32(prev.Origin.Y), float32(kf.Origin.Y), d, fn),
			rate:     gween.New(float32(prev.Rate), float32(kf.Rate), d, fn),
		})
		t.total += kf.Duration
		prev = kf
	}
	return t, nil
}

// Restart rewinds the tour to its first keyframe.
func (t *Tour) Restart() {
	t.start = t.clock.Now()
}

// Movement returns the interpolated pose for the current time.
func (t *Tour) Movement() Movement {
	elapsed := t.clock.Now().Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}
	elapsed %= t.total

	seg := t.segments[len(t.segments)-1]
	for _, s := range t.segments {
		if elapsed < s.start+s.duration {
			seg = s
			break
		}
	}

	at := float32((elapsed - seg.start).Seconds())
	x, _ := seg.x.Set(at)
	y, _ := seg.y.Set(at)
	rate, _ := seg.rate.Set(at)
	return Movement{
		Origin: geom.Vec{X: float64(x), Y: float64(y)},
		Rate:   float64(rate),
	}
}

// EaseByName maps a config name to an easing function.
func EaseByName(name string) (ease.TweenFunc, error) {
	switch name {
	case "", "linear":
		return ease.Linear, nil
	case "in_out_quad":
		return ease.InOutQuad, nil
	case "in_out_sine":
		return ease.InOutSine, nil
	case "out_cubic":
		return ease.OutCubic, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}
