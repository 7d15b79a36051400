package derma

// SelectionState is the phase of the select/drag state machine.
type SelectionState uint8

const (
	StateIdle     SelectionState = iota // nothing selected
	StateSelected                       // a widget is selected, no drag in progress
	StateDragging                       // the selected widget follows the pointer
)

func (st SelectionState) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Selection holds the single selected widget. It does not own it.
type Selection struct {
	selected Widget
}

// Selected returns the selected widget, or nil.
func (s *Session) Selected() Widget {
	return s.selection.selected
}

// Select makes w the selected widget. Selecting the current selection is a
// no-op. Reports whether the selection changed.
func (s *Session) Select(w Widget) bool {
	if w == nil {
		return s.Deselect()
	}
	if s.selection.selected == w {
		return false
	}
	if s.inspector != nil {
		s.inspector.Inspect(w)
	}
	s.selection.selected = w
	s.grip.attach(w)
	if sel, ok := w.(Selectable); ok {
		sel.OnSelect()
	}
	s.pulse.Restart()
	s.emit(DesignSelected, w)
	s.Repaint()
	return true
}

// Deselect clears the selection. Reports whether anything was selected.
func (s *Session) Deselect() bool {
	if s.selection.selected == nil {
		return false
	}
	prev := s.selection.selected
	s.selection.selected = nil
	s.grip.attach(nil)
	if s.inspector != nil {
		s.inspector.Inspect(nil)
	}
	s.emit(DesignDeselected, prev)
	s.Repaint()
	return true
}

// State reports the current phase of the select/drag state machine.
func (s *Session) State() SelectionState {
	for _, w := range s.store.All() {
		if w.Base().dragging {
			return StateDragging
		}
	}
	if s.selection.selected != nil {
		return StateSelected
	}
	return StateIdle
}

// beginDrag starts dragging w if it is unlocked, selected, not centered and
// under the pointer.
func (s *Session) beginDrag(ev PointerEvent) {
	w := s.selection.selected
	if w == nil || ev.Button != MouseButtonLeft {
		return
	}
	p := w.Base()
	if p.Locked || p.Centered || p.Hidden || !p.Contains(ev.X, ev.Y) {
		return
	}
	s.settleNudges()
	p.dragOffsetX = ev.X - p.X
	p.dragOffsetY = ev.Y - p.Y
	p.dragging = true
}

// dragTo moves every dragging widget so its offset to the pointer is kept.
func (s *Session) dragTo(ev PointerEvent) {
	if s.grip.resizing {
		return
	}
	for _, w := range s.store.All() {
		p := w.Base()
		if !p.dragging || p.Centered || p.Locked {
			continue
		}
		x := ev.X - p.dragOffsetX
		y := ev.Y - p.dragOffsetY
		hook, _ := w.(DragHook)
		if hook != nil && !hook.PreDrag(x, y) {
			continue
		}
		dx, dy := x-p.X, y-p.Y
		p.SetPos(x, y)
		s.translateDescendants(w, dx, dy)
		if hook != nil {
			hook.PostDrag()
		}
		s.emit(DesignMoved, w)
		s.RefreshProperties()
		s.Repaint()
	}
}

// endDrags clears the dragging flag on every widget.
func (s *Session) endDrags() {
	for _, w := range s.store.All() {
		w.Base().dragging = false
	}
}

// translateDescendants shifts every descendant of w by (dx, dy).
func (s *Session) translateDescendants(w Widget, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, c := range s.store.All() {
		if c == w {
			continue
		}
		if isAncestor(w, c) {
			cp := c.Base()
			cp.SetPos(cp.X+dx, cp.Y+dy)
			s.emit(DesignMoved, c)
		}
	}
}
