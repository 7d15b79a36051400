package derma

import "strings"

// Button is a DButton: a bordered clickable box with a centred label and an
// optional DoClick body.
type Button struct {
	Panel
	// Text is the label shown on the button.
	Text string
	// DoClick is Lua inserted verbatim as the body of the DoClick function.
	DoClick string

	skin *FrameSkin
}

// NewButton creates a 70x25 DButton at (x, y) using the shared skin.
func NewButton(skin *FrameSkin, x, y float64) *Button {
	return &Button{
		Panel: NewPanel(x, y, 70, 25),
		Text:  "DButton",
		skin:  skin,
	}
}

// TypeName returns "DButton".
func (b *Button) TypeName() string { return "DButton" }

// Draw paints the framed button with its text centred.
func (b *Button) Draw(dst Surface) {
	r := b.Bounds()
	dst = dst.Clip(r)
	drawFrame(dst, r, b.skin, colorButtonBackground)
	drawCenteredText(dst, r, b.Text, ColorText)
}

// EmitLua writes SetText and, when DoClick is set, the click handler.
func (b *Button) EmitLua(w *LuaWriter) {
	w.Call(b.VarName, "SetText", LuaQuote(b.Text))
	if strings.TrimSpace(b.DoClick) != "" {
		w.Linef("%s.DoClick = function()\n%s\nend", b.VarName, b.DoClick)
	}
}
