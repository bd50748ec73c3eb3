package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches truetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudMargin  = 20
	barHeight  = 30
	timerWidth = 100
)

var (
	colorBarLost   = color.RGBA{200, 40, 40, 255}
	colorBarFG     = color.RGBA{120, 100, 230, 255}
	colorTimerBG   = color.RGBA{0, 0, 0, 180}
	colorOverlay   = color.RGBA{0, 0, 0, 140}
	colorHUDText   = color.White
	colorHintText  = color.RGBA{200, 200, 200, 255}
	colorBannerTxt = color.RGBA{255, 215, 0, 255}
)

// Panel is a HUD element that can be shown or hidden.
type Panel struct {
	visible bool
}

// SetVisible implements match.Toggle.
func (p *Panel) SetVisible(v bool) { p.visible = v }

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// Label is a line of HUD text.
type Label struct {
	text string
}

// SetText implements match.TextSink.
func (l *Label) SetText(s string) { l.text = s }

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// Bar is a health bar fed with "NN%" strings.
type Bar struct {
	ratio float64
}

// SetHealth implements character.HealthIndicator. Unparsable values are
// ignored.
func (b *Bar) SetHealth(percent string) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(percent, "%"), 64)
	if err != nil {
		return
	}
	b.ratio = min(max(v/100, 0), 1)
}

// Ratio returns the filled share of the bar.
func (b *Bar) Ratio() float64 { return b.ratio }

// HUD draws the health bars, the countdown and the start screen.
type HUD struct {
	Indicators   Panel
	StartScreen  Panel
	Timer        Label
	Result       Label
	PlayerHealth Bar
	EnemyHealth  Bar

	title  string
	hint   string
	width  float64
	height float64

	big   font.Face
	small font.Face
}

// NewHUD creates a HUD for a canvas of w x h pixels.
func NewHUD(title, hint string, w, h int) (*HUD, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &HUD{
		PlayerHealth: Bar{ratio: 1},
		EnemyHealth:  Bar{ratio: 1},
		title:        title,
		hint:         hint,
		width:        float64(w),
		height:       float64(h),
		big:          truetype.NewFace(f, &truetype.Options{Size: 36}),
		small:        truetype.NewFace(f, &truetype.Options{Size: 16}),
	}, nil
}

// Draw renders the visible elements onto dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h.Indicators.Visible() {
		h.drawIndicators(dst)
	}
	if h.StartScreen.Visible() {
		h.drawStartScreen(dst)
	}
}

func (h *HUD) drawIndicators(dst *ebiten.Image) {
	player, enemy := BarLayout(h.width, hudMargin, timerWidth, h.PlayerHealth.Ratio(), h.EnemyHealth.Ratio())
	for _, r := range []barRects{player, enemy} {
		fill(dst, r.back, colorBarLost)
		fill(dst, r.health, colorBarFG)
	}

	fill(dst, rect{x: h.width/2 - timerWidth/2, y: hudMargin, w: timerWidth, h: barHeight}, colorTimerBG)
	h.drawCentered(dst, h.Timer.Text(), h.small, h.width/2, hudMargin+barHeight/2+6, colorHUDText)
}

func (h *HUD) drawStartScreen(dst *ebiten.Image) {
	vector.FillRect(dst, 0, 0, float32(h.width), float32(h.height), colorOverlay, false)

	cy := h.height / 2
	if r := h.Result.Text(); r != "" {
		h.drawCentered(dst, r, h.big, h.width/2, cy-60, colorBannerTxt)
	}
	h.drawCentered(dst, h.title, h.big, h.width/2, cy, colorHUDText)
	h.drawCentered(dst, h.hint, h.small, h.width/2, cy+40, colorHintText)
}

func (h *HUD) drawCentered(dst *ebiten.Image, s string, face font.Face, cx, baseline float64, c color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, int(cx)-b.Dx()/2, int(baseline), c)
}

type barRects struct {
	back, health rect
}

type rect struct {
	x, y, w, h float64
}

// BarLayout places both health bars beside the timer box. The player bar
// drains toward the center from the left, the enemy bar mirrors it.
func BarLayout(width, margin, timerW, playerRatio, enemyRatio float64) (player, enemy barRects) {
	const barH = barHeight
	barW := (width - 2*margin - timerW) / 2

	player.back = rect{x: margin, y: margin, w: barW, h: barH}
	player.health = rect{x: margin + barW*(1-playerRatio), y: margin, w: barW * playerRatio, h: barH}

	ex := width - margin - barW
	enemy.back = rect{x: ex, y: margin, w: barW, h: barH}
	enemy.health = rect{x: ex, y: margin, w: barW * enemyRatio, h: barH}
	return player, enemy
}

func fill(dst *ebiten.Image, r rect, c color.Color) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	vector.FillRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, false)
}
