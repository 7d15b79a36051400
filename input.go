package derma

// --- Pointer dispatch ---
//
// Each entry point runs the designer's own behaviour (resize grip, selection,
// dragging) first, then delivers the event to at most one widget: the first
// in store order whose rectangle contains the pointer and which has a
// handler for the event kind. Events never propagate to widgets beneath.
// Each returns the widget that received the event, or nil.

// PointerDown handles a button press. The resize grip is checked first and
// consumes the event when hit; otherwise a primary press selects the
// topmost visible widget under the pointer and starts dragging it.
func (s *Session) PointerDown(ev PointerEvent) Widget {
	if s.gripDown(ev) {
		s.Repaint()
		return nil
	}
	if ev.Button == MouseButtonLeft {
		if w := s.store.FirstAt(ev.X, ev.Y, notHidden); w != nil {
			s.Select(w)
			s.Repaint()
		} else {
			s.Deselect()
		}
	}
	s.beginDrag(ev)
	return s.deliver(EventPointerDown, ev)
}

// PointerUp handles a button release. Dragging stops on every widget,
// whichever one was moving.
func (s *Session) PointerUp(ev PointerEvent) Widget {
	s.endDrags()
	s.gripUp()
	return s.deliver(EventPointerUp, ev)
}

// PointerMove handles pointer motion: drags and resizes follow the pointer
// and centered widgets are re-centred before the event is delivered.
func (s *Session) PointerMove(ev PointerEvent) Widget {
	s.dragTo(ev)
	s.gripMove(ev)
	s.recenter()
	return s.deliver(EventPointerMove, ev)
}

// Click delivers a click. Hidden widgets never receive clicks.
func (s *Session) Click(ev PointerEvent) Widget {
	return s.deliver(EventClick, ev)
}

// DoubleClick delivers a double click.
func (s *Session) DoubleClick(ev PointerEvent) Widget {
	return s.deliver(EventDoubleClick, ev)
}

// Wheel delivers a wheel scroll.
func (s *Session) Wheel(ev PointerEvent) Widget {
	return s.deliver(EventWheel, ev)
}

// deliver calls the handler of the first matching widget.
func (s *Session) deliver(kind EventType, ev PointerEvent) Widget {
	for _, w := range s.store.All() {
		p := w.Base()
		if !p.Contains(ev.X, ev.Y) {
			continue
		}
		if kind == EventClick && p.Hidden {
			continue
		}
		fn := p.handler(kind)
		if fn == nil {
			continue
		}
		ev.Widget = w
		fn(ev)
		if s.debug {
			s.debugLogf("%s delivered to %q", kind, p.VarName)
		}
		return w
	}
	return nil
}

func notHidden(w Widget) bool {
	return !w.Base().Hidden
}
