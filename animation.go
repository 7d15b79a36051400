package derma

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors and call Update(dt) each tick. If the target
// widget is removed from its session, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target Widget
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.Base().removed {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates a widget's X and Y to the target coordinates.
func TweenPosition(w Widget, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	p := w.Base()
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(p.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(toY), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenValue animates a single field to the target value.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

const (
	pulseLow      = 0.45
	pulseHigh     = 1.0
	pulseDuration = 0.6 // seconds per half cycle
)

// HighlightPulse oscillates the alpha of the selection highlight between
// two values. It runs as a session tick subscriber.
type HighlightPulse struct {
	tween  *gween.Tween
	alpha  float64
	rising bool
}

// NewHighlightPulse returns a pulse starting fully opaque.
func NewHighlightPulse() *HighlightPulse {
	p := &HighlightPulse{}
	p.Restart()
	return p
}

// Restart resets the pulse to fully opaque, fading out.
func (p *HighlightPulse) Restart() {
	p.alpha = pulseHigh
	p.rising = false
	p.tween = gween.New(pulseHigh, pulseLow, pulseDuration, ease.InOutSine)
}

// Update advances the pulse by dt seconds, reversing at either end.
func (p *HighlightPulse) Update(dt float64) {
	val, finished := p.tween.Update(float32(dt))
	p.alpha = float64(val)
	if !finished {
		return
	}
	p.rising = !p.rising
	if p.rising {
		p.tween = gween.New(pulseLow, pulseHigh, pulseDuration, ease.InOutSine)
	} else {
		p.tween = gween.New(pulseHigh, pulseLow, pulseDuration, ease.InOutSine)
	}
}

// Alpha returns the current highlight alpha in [pulseLow, pulseHigh].
func (p *HighlightPulse) Alpha() float64 {
	return p.alpha
}
