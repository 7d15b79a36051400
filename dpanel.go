package derma

// BasicPanel is a DPanel: a plain container, usually a parent for others.
type BasicPanel struct {
	Panel
	// PaintBackground is emitted as SetPaintBackground(false) when cleared.
	PaintBackground bool

	skin *FrameSkin
}

// NewBasicPanel creates a 100x100 DPanel at (x, y) using the shared skin.
func NewBasicPanel(skin *FrameSkin, x, y float64) *BasicPanel {
	return &BasicPanel{
		Panel:           NewPanel(x, y, 100, 100),
		PaintBackground: true,
		skin:            skin,
	}
}

// TypeName returns "DPanel".
func (p *BasicPanel) TypeName() string { return "DPanel" }

// Draw paints the panel background, or only an outline when the
// background is off.
func (p *BasicPanel) Draw(dst Surface) {
	r := p.Bounds()
	dst = dst.Clip(r)
	if p.PaintBackground {
		drawFrame(dst, r, p.skin, colorPanelBackground)
		return
	}
	// Outline only, so the design stays visible.
	c := RGB(160, 160, 160)
	dst.FillRect(Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
	dst.FillRect(Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c)
	dst.FillRect(Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
	dst.FillRect(Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
}

// EmitLua writes SetPaintBackground(false) when the background is off.
func (p *BasicPanel) EmitLua(w *LuaWriter) {
	if !p.PaintBackground {
		w.Call(p.VarName, "SetPaintBackground", "false")
	}
}
