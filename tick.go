package derma

import "github.com/tanema/gween/ease"

// TickFunc is called on every session tick with the elapsed seconds.
type TickFunc func(dt float64)

type tickHandler struct {
	id uint32
	fn TickFunc
}

type tickRegistry struct {
	handlers []tickHandler
	fireBuf  []tickHandler
	nextID   uint32
}

// TickHandle allows removing a registered tick subscriber.
type TickHandle struct {
	id  uint32
	reg *tickRegistry
}

// Remove unregisters the subscriber. Reports false if it was already removed.
func (h TickHandle) Remove() bool {
	if h.reg == nil {
		return false
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tickHandler{}
			h.reg.handlers = s[:len(s)-1]
			return true
		}
	}
	return false
}

// fire calls every subscriber in registration order. Subscribers removed
// during the fan-out still see this tick.
func (r *tickRegistry) fire(dt float64) {
	r.fireBuf = append(r.fireBuf[:0], r.handlers...)
	for _, h := range r.fireBuf {
		h.fn(dt)
	}
}

// AddTickFunc registers fn to run on every tick.
func (s *Session) AddTickFunc(fn TickFunc) TickHandle {
	s.ticks.nextID++
	id := s.ticks.nextID
	s.ticks.handlers = append(s.ticks.handlers, tickHandler{id: id, fn: fn})
	return TickHandle{id: id, reg: &s.ticks}
}

// AddTween runs g on every tick until it is done, then unsubscribes it and
// calls onDone if set. A group stopped by setting Done finishes the same way.
func (s *Session) AddTween(g *TweenGroup, onDone func()) {
	var h TickHandle
	h = s.AddTickFunc(func(dt float64) {
		g.Update(float32(dt))
		s.Repaint()
		if !g.Done {
			return
		}
		h.Remove()
		if onDone != nil {
			onDone()
		}
	})
}

const nudgeDuration = 0.12

// nudge is a glide in progress. toX, toY is where the widget ends up.
type nudge struct {
	group    *TweenGroup
	toX, toY float64
}

// Nudge glides the selected widget and its descendants by (dx, dy). Locked
// and centered widgets stay put, as do moves the widget's DragHook rejects.
// Nudges issued while an earlier one is still gliding add up.
func (s *Session) Nudge(dx, dy float64) bool {
	w := s.selection.selected
	if w == nil {
		return false
	}
	p := w.Base()
	if p.Locked || p.Centered {
		return false
	}
	x, y := s.nudgeTarget(w)
	if hook, ok := w.(DragHook); ok && !hook.PreDrag(x+dx, y+dy) {
		return false
	}
	for _, c := range s.store.All() {
		if !isAncestor(w, c) || (c != w && c.Base().Centered) {
			continue
		}
		cx, cy := s.nudgeTarget(c)
		s.startNudge(c, cx+dx, cy+dy)
	}
	s.RefreshProperties()
	s.Repaint()
	return true
}

// nudgeTarget returns where w rests once its pending nudge finishes.
func (s *Session) nudgeTarget(w Widget) (float64, float64) {
	if n, ok := s.nudges[w]; ok {
		return n.toX, n.toY
	}
	p := w.Base()
	return p.X, p.Y
}

// startNudge replaces any glide of w with one towards (x, y).
func (s *Session) startNudge(w Widget, x, y float64) {
	if old, ok := s.nudges[w]; ok {
		old.group.Done = true
	}
	n := &nudge{group: TweenPosition(w, x, y, nudgeDuration, ease.OutQuad), toX: x, toY: y}
	s.nudges[w] = n

	s.AddTween(n.group, func() {
		if s.nudges[w] != n {
			return
		}
		delete(s.nudges, w)
		if !w.Base().removed {
			s.emit(DesignMoved, w)
			s.RefreshProperties()
		}
	})
}

// settleNudges jumps every gliding widget to its nudge target.
func (s *Session) settleNudges() {
	if len(s.nudges) == 0 {
		return
	}
	for _, w := range s.store.All() {
		n, ok := s.nudges[w]
		if !ok {
			continue
		}
		n.group.Done = true
		delete(s.nudges, w)
		w.Base().SetPos(n.toX, n.toY)
		s.emit(DesignMoved, w)
	}
	clear(s.nudges)
}
