package derma

const (
	gripSize      = 7.0
	minWidgetSize = 8.0
)

// ColorGrip is the fill of the resize handle.
var ColorGrip = RGB(255, 255, 255)

// ResizeGrip is the square handle at the bottom-right corner of the selected
// widget. Pressing it starts a resize that consumes the pointer until release.
type ResizeGrip struct {
	host     Widget
	resizing bool
	// offset from the pointer to the host's bottom-right corner
	offsetX, offsetY float64
}

func (g *ResizeGrip) attach(w Widget) {
	g.host = w
	g.resizing = false
}

// Host returns the widget the grip is attached to, or nil.
func (g *ResizeGrip) Host() Widget {
	return g.host
}

// Resizing reports whether a resize is in progress.
func (g *ResizeGrip) Resizing() bool {
	return g.resizing
}

// Rect returns the grip rectangle. ok is false when the grip is not shown.
func (g *ResizeGrip) Rect() (r Rect, ok bool) {
	if g.host == nil {
		return Rect{}, false
	}
	p := g.host.Base()
	if p.Locked || p.Hidden || p.removed {
		return Rect{}, false
	}
	half := gripSize / 2
	return Rect{X: p.X + p.Width - half, Y: p.Y + p.Height - half, Width: gripSize, Height: gripSize}, true
}

// Grip returns the session's resize grip.
func (s *Session) Grip() *ResizeGrip {
	return &s.grip
}

// gripDown starts a resize when the primary button is pressed on the grip.
// Reports whether the event was consumed.
func (s *Session) gripDown(ev PointerEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	r, ok := s.grip.Rect()
	if !ok || !r.Contains(ev.X, ev.Y) {
		return false
	}
	p := s.grip.host.Base()
	s.grip.resizing = true
	s.grip.offsetX = p.X + p.Width - ev.X
	s.grip.offsetY = p.Y + p.Height - ev.Y
	return true
}

// gripMove resizes the host to follow the pointer.
func (s *Session) gripMove(ev PointerEvent) {
	if !s.grip.resizing || s.grip.host == nil {
		return
	}
	p := s.grip.host.Base()
	w := max(ev.X+s.grip.offsetX-p.X, minWidgetSize)
	h := max(ev.Y+s.grip.offsetY-p.Y, minWidgetSize)
	if w == p.Width && h == p.Height {
		return
	}
	p.SetSize(w, h)
	s.emit(DesignResized, s.grip.host)
	s.RefreshProperties()
	s.Repaint()
}

// gripUp ends a resize.
func (s *Session) gripUp() {
	s.grip.resizing = false
}

// draw paints the grip over its host.
func (g *ResizeGrip) draw(dst Surface) {
	r, ok := g.Rect()
	if !ok {
		return
	}
	dst.FillRect(r, RGB(0, 0, 0))
	dst.FillRect(r.Expand(-1), ColorGrip)
}
