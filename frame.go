package derma

const frameTitleHeight = 22.0

var colorFrameTitle = RGB(60, 60, 60)

// Frame is a DFrame: a top-level window with a title bar.
type Frame struct {
	Panel
	Title string
	// ShowClose is emitted as ShowCloseButton(false) when cleared.
	ShowClose bool
	// Draggable is emitted as SetDraggable(false) when cleared.
	Draggable bool
	// Popup emits MakePopup so the frame takes keyboard and mouse focus.
	Popup bool

	skin *FrameSkin
}

// NewFrame creates a 250x200 DFrame at (x, y) using the shared skin.
// Frames are top-level and cannot be parented.
func NewFrame(skin *FrameSkin, x, y float64) *Frame {
	f := &Frame{
		Panel:     NewPanel(x, y, 250, 200),
		Title:     "DFrame",
		ShowClose: true,
		Draggable: true,
		Popup:     true,
		skin:      skin,
	}
	f.CanBeChild = false
	return f
}

// TypeName returns "DFrame".
func (f *Frame) TypeName() string { return "DFrame" }

// Draw paints the frame and its title bar.
func (f *Frame) Draw(dst Surface) {
	r := f.Bounds()
	dst = dst.Clip(r)
	drawFrame(dst, r, f.skin, colorFrameBackground)

	bar := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: frameTitleHeight}
	dst.FillRect(bar, colorFrameTitle)
	_, h := dst.MeasureText(f.Title)
	dst.DrawText(f.Title, bar.X+5, bar.Y+bar.Height/2-h/2, ColorText)
	if f.ShowClose {
		w, _ := dst.MeasureText("x")
		dst.DrawText("x", bar.X+bar.Width-w-6, bar.Y+bar.Height/2-h/2, ColorText)
	}
}

// EmitLua writes the title and the non-default window options.
func (f *Frame) EmitLua(w *LuaWriter) {
	w.Call(f.VarName, "SetTitle", LuaQuote(f.Title))
	if !f.ShowClose {
		w.Call(f.VarName, "ShowCloseButton", "false")
	}
	if !f.Draggable {
		w.Call(f.VarName, "SetDraggable", "false")
	}
	if f.Popup {
		w.Call(f.VarName, "MakePopup")
	}
}
