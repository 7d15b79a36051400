package derma

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	statusHeight   = 18.0
	statusInterval = 0.5 // seconds between FPS/TPS refreshes
)

var colorStatusBackground = RGB(25, 25, 25)

// StatusBar is the strip under the canvas. It is the session's Inspector:
// it shows the selected widget's properties, plus the current FPS and TPS.
type StatusBar struct {
	target Widget
	text   string
	rate   string
	since  float64
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{text: "nothing selected"}
}

// Inspect switches the bar to w; nil shows the idle text.
func (b *StatusBar) Inspect(w Widget) {
	b.target = w
	b.Refresh()
}

// Refresh re-reads the inspected widget.
func (b *StatusBar) Refresh() {
	if b.target == nil {
		b.text = "nothing selected"
		return
	}
	p := b.target.Base()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)  x=%s y=%s  w=%s h=%s  z=%g",
		p.VarName, b.target.TypeName(),
		LuaNumber(p.X), LuaNumber(p.Y), LuaNumber(p.Width), LuaNumber(p.Height), p.Z)
	if p.Parent != nil {
		fmt.Fprintf(&sb, "  parent=%s", p.Parent.Base().VarName)
	}
	for _, f := range []struct {
		on   bool
		name string
	}{{p.Locked, "locked"}, {p.Centered, "centered"}, {p.Hidden, "hidden"}, {!p.Visible, "invisible"}} {
		if f.on {
			sb.WriteString("  [" + f.name + "]")
		}
	}
	b.text = sb.String()
}

// Text returns the property line.
func (b *StatusBar) Text() string {
	return b.text
}

// Update refreshes the FPS/TPS readout every half second.
func (b *StatusBar) Update(dt float64) {
	b.since += dt
	if b.since < statusInterval {
		return
	}
	b.since = 0
	b.rate = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw paints the bar into dst's bounds.
func (b *StatusBar) Draw(dst Surface) {
	r := dst.Bounds()
	dst.FillRect(r, colorStatusBackground)
	_, h := dst.MeasureText(b.text)
	dst.DrawText(b.text, r.X+4, r.Y+(r.Height-h)/2, ColorText)
	if b.rate != "" {
		w, _ := dst.MeasureText(b.rate)
		dst.DrawText(b.rate, r.X+r.Width-w-4, r.Y+(r.Height-h)/2, ColorText)
	}
}
