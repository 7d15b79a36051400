package derma

// Label is a DLabel: a single line of text without a frame.
type Label struct {
	Panel
	Text string
	// AutoSize emits SizeToContents so the runtime sizes the label to its text.
	AutoSize bool
	Color    Color
}

// NewLabel creates a DLabel at (x, y).
func NewLabel(x, y float64) *Label {
	return &Label{
		Panel:    NewPanel(x, y, 60, 15),
		Text:     "DLabel",
		AutoSize: true,
		Color:    ColorText,
	}
}

// TypeName returns "DLabel".
func (l *Label) TypeName() string { return "DLabel" }

// Draw paints the label text.
func (l *Label) Draw(dst Surface) {
	r := l.Bounds()
	dst = dst.Clip(r)
	_, h := dst.MeasureText(l.Text)
	dst.DrawText(l.Text, r.X, r.Y+r.Height/2-h/2, l.Color)
}

// EmitLua writes SetText, the text colour when not the default, and
// SizeToContents when AutoSize is set.
func (l *Label) EmitLua(w *LuaWriter) {
	w.Call(l.VarName, "SetText", LuaQuote(l.Text))
	if l.Color != ColorText {
		w.Call(l.VarName, "SetTextColor", luaColor(l.Color))
	}
	if l.AutoSize {
		w.Call(l.VarName, "SizeToContents")
	}
}

// luaColor formats c as a Color(r, g, b, a) constructor call.
func luaColor(c Color) string {
	return "Color(" + LuaNumber(c.R*255) + ", " + LuaNumber(c.G*255) + ", " +
		LuaNumber(c.B*255) + ", " + LuaNumber(c.A*255) + ")"
}
