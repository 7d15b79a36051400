package derma

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrParentCycle is returned when parenting would make a widget its own ancestor.
	ErrParentCycle = errors.New("parenting would create a cycle")
	// ErrCannotParent is returned when the child type cannot be parented.
	ErrCannotParent = errors.New("widget cannot be a child")
	// ErrNameInUse is returned when renaming to a variable name already used.
	ErrNameInUse = errors.New("variable name already in use")
	// ErrInvalidName is returned when a variable name is not a Lua identifier.
	ErrInvalidName = errors.New("invalid variable name")
	// ErrNotInSession is returned when a widget does not belong to the session.
	ErrNotInSession = errors.New("widget is not part of this session")
)

// DesignEventType identifies a change to the design.
type DesignEventType uint8

const (
	DesignWidgetCreated DesignEventType = iota // a widget was added to the store
	DesignWidgetRemoved                        // a widget was removed from the store
	DesignSelected                             // the selection changed
	DesignMoved                                // a widget was dragged
	DesignResized                              // a widget was resized with the grip
	DesignReparented                           // a widget's parent changed
	DesignReordered                            // a widget's Z changed
	DesignExported                             // Lua was generated for export
	DesignRenamed                              // a widget's variable name changed
	DesignDeselected                           // the selection was cleared
)

// DesignEvent describes one change to the design for an EventSink.
type DesignEvent struct {
	Type       DesignEventType
	VarName    string
	WidgetType string
	X, Y       float64
	Width      float64
	Height     float64
	Z          float64
	// ParentVar is the parent's variable name, or "" for a top-level widget.
	ParentVar string
	// OldVarName is the name before the change (valid for DesignRenamed).
	OldVarName string
	// Code is the generated Lua (valid for DesignExported).
	Code string
}

// EventSink receives design events. When set on a Session, every change to
// the design is forwarded to it.
type EventSink interface {
	EmitEvent(event DesignEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(DesignEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event DesignEvent) { f(event) }

// Notifier reports errors and messages to the user.
type Notifier interface {
	Notify(title, message string)
}

// Inspector shows the properties of the selected widget.
type Inspector interface {
	// Inspect switches the inspector to w.
	Inspect(w Widget)
	// Refresh re-reads the inspected widget's properties.
	Refresh()
}

type stderrNotifier struct{}

func (stderrNotifier) Notify(title, message string) {
	_, _ = fmt.Fprintf(os.Stderr, "[derma] %s: %s\n", title, message)
}

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
)

// Session owns the state of one design: the registry, the widget store, the
// selection, the resize grip and the tick subscribers. It replaces
// process-wide state; create one per design and drop it when done.
type Session struct {
	registry  *Registry
	store     Store
	selection Selection
	grip      ResizeGrip
	ticks     tickRegistry
	nudges    map[Widget]*nudge
	names     nameAllocator
	nextZ     float64

	canvas Rect
	skin   *Skin
	pulse  *HighlightPulse

	notifier  Notifier
	inspector Inspector
	sink      EventSink

	debug    bool
	repaints int

	// ParentsFirst makes Export emit every parent before its children.
	ParentsFirst bool
}

// NewSession creates an empty session using reg for widget construction.
// A nil reg gets a fresh, empty registry.
func NewSession(reg *Registry) *Session {
	if reg == nil {
		reg = NewRegistry()
	}
	s := &Session{
		registry: reg,
		names:    newNameAllocator(),
		nudges:   make(map[Widget]*nudge),
		canvas:   Rect{Width: defaultCanvasWidth, Height: defaultCanvasHeight},
		notifier: stderrNotifier{},
		pulse:    NewHighlightPulse(),
	}
	s.AddTickFunc(s.pulse.Update)
	return s
}

// Registry returns the session's widget registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Store returns the session's widget store.
func (s *Session) Store() *Store {
	return &s.store
}

// Widgets returns every widget in store order. The returned slice MUST NOT
// be mutated.
func (s *Session) Widgets() []Widget {
	return s.store.All()
}

// SetCanvasSize sets the canvas size used for centering and the logo.
func (s *Session) SetCanvasSize(w, h float64) {
	s.canvas.Width = w
	s.canvas.Height = h
}

// Canvas returns the canvas rectangle.
func (s *Session) Canvas() Rect {
	return s.canvas
}

// SetSkin sets the appearance used for the logo and the selection highlight.
func (s *Session) SetSkin(skin *Skin) {
	s.skin = skin
}

// SetNotifier replaces the user notification channel. nil restores stderr.
func (s *Session) SetNotifier(n Notifier) {
	if n == nil {
		n = stderrNotifier{}
	}
	s.notifier = n
}

// SetInspector sets the property inspector refreshed on selection and drag.
func (s *Session) SetInspector(in Inspector) {
	s.inspector = in
}

// SetEventSink sets the optional design event sink.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug diagnostics on stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// New creates a widget of the registered type at (x, y) and inserts it at
// the front of the store. Errors are reported to the notifier and returned;
// no widget is created in that case.
func (s *Session) New(typeName string, x, y float64) (Widget, error) {
	w, err := s.registry.Create(typeName, x, y)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownType):
			s.notify("Invalid panel type", fmt.Sprintf("Derma control %q not found.", typeName))
		default:
			s.notify("Invalid panel constructor", fmt.Sprintf("Derma control %q not created: %v", typeName, err))
		}
		return nil, err
	}
	p := w.Base()
	p.Z = s.nextZ
	s.nextZ++
	p.VarName = s.names.next(w.TypeName())
	if p.Centered {
		p.centerIn(s.container(w))
	}
	s.store.InsertFront(w)
	s.emit(DesignWidgetCreated, w)
	s.debugLogf("created %s %q at (%g, %g) z=%g", w.TypeName(), p.VarName, p.X, p.Y, p.Z)
	s.Repaint()
	return w, nil
}

// Remove deletes w from the design. Its children are unparented and keep
// their canvas positions. Reports whether w was present.
func (s *Session) Remove(w Widget) bool {
	if !s.store.Remove(w) {
		return false
	}
	for _, c := range s.store.All() {
		if c.Base().Parent == w {
			c.Base().Parent = nil
			s.emit(DesignReparented, c)
		}
	}
	delete(s.nudges, w)
	if s.selection.selected == w {
		s.Deselect()
	}
	p := w.Base()
	p.Parent = nil
	p.dragging = false
	p.removed = true
	s.emit(DesignWidgetRemoved, w)
	s.Repaint()
	return true
}

// SetParent parents child to parent; a nil parent detaches it. Failures are
// reported to the notifier and returned.
func (s *Session) SetParent(child, parent Widget) error {
	if s.store.IndexOf(child) < 0 || (parent != nil && s.store.IndexOf(parent) < 0) {
		return fmt.Errorf("derma: set parent: %w", ErrNotInSession)
	}
	cp := child.Base()
	if parent != nil {
		if !cp.CanBeChild {
			s.notify("Invalid parent", fmt.Sprintf("%s %q cannot be a child.", child.TypeName(), cp.VarName))
			return fmt.Errorf("derma: set parent of %q: %w", cp.VarName, ErrCannotParent)
		}
		if isAncestor(child, parent) {
			s.notify("Invalid parent", fmt.Sprintf("%q cannot be parented to %q.", cp.VarName, parent.Base().VarName))
			return fmt.Errorf("derma: set parent of %q: %w", cp.VarName, ErrParentCycle)
		}
	}
	cp.Parent = parent
	if cp.Centered {
		cp.centerIn(s.container(child))
	}
	s.emit(DesignReparented, child)
	s.RefreshProperties()
	s.Repaint()
	return nil
}

// Rename changes w's variable name. The old name stays reserved.
func (s *Session) Rename(w Widget, name string) error {
	if !validLuaName(name) {
		s.notify("Invalid name", fmt.Sprintf("%q is not a valid Lua identifier.", name))
		return fmt.Errorf("derma: rename to %q: %w", name, ErrInvalidName)
	}
	if w.Base().VarName == name {
		return nil
	}
	if !s.names.reserve(name) {
		s.notify("Invalid name", fmt.Sprintf("%q is already used.", name))
		return fmt.Errorf("derma: rename to %q: %w", name, ErrNameInUse)
	}
	old := w.Base().VarName
	w.Base().VarName = name
	if s.sink != nil {
		ev := s.event(DesignRenamed, w)
		ev.OldVarName = old
		s.sink.EmitEvent(ev)
	}
	s.RefreshProperties()
	return nil
}

// BringToFront gives w the highest Z and resorts the store.
func (s *Session) BringToFront(w Widget) {
	w.Base().Z = s.nextZ
	s.nextZ++
	s.store.ResortByZ()
	s.emit(DesignReordered, w)
	s.Repaint()
}

// SendToBack gives w the lowest Z and resorts the store.
func (s *Session) SendToBack(w Widget) {
	lowest := w.Base().Z
	for _, c := range s.store.All() {
		lowest = min(lowest, c.Base().Z)
	}
	w.Base().Z = lowest - 1
	s.store.ResortByZ()
	s.emit(DesignReordered, w)
	s.Repaint()
}

// Export generates the Lua for the whole design, honouring ParentsFirst.
// Nudges still gliding are settled first.
func (s *Session) Export() string {
	s.settleNudges()
	var code string
	if s.ParentsFirst {
		code = s.GenerateParentsFirst()
	} else {
		code = s.Generate()
	}
	if s.sink != nil {
		s.sink.EmitEvent(DesignEvent{Type: DesignExported, Code: code})
	}
	return code
}

// Repaint requests a redraw of the canvas.
func (s *Session) Repaint() {
	s.repaints++
}

// Repaints returns how many redraws were requested so far.
func (s *Session) Repaints() int {
	return s.repaints
}

// RefreshProperties asks the inspector to re-read the selected widget.
func (s *Session) RefreshProperties() {
	if s.inspector != nil && s.selection.selected != nil {
		s.inspector.Refresh()
	}
}

// Tick re-centres centered widgets and fans out to tick subscribers.
func (s *Session) Tick(dt float64) {
	s.recenter()
	s.ticks.fire(dt)
}

// recenter moves every centered widget to the middle of its container.
func (s *Session) recenter() {
	for _, w := range s.store.All() {
		p := w.Base()
		if !p.Centered {
			continue
		}
		x, y := p.X, p.Y
		p.centerIn(s.container(w))
		if p.X != x || p.Y != y {
			s.emit(DesignMoved, w)
		}
	}
}

// container returns the rectangle w is centred in: its parent or the canvas.
func (s *Session) container(w Widget) Rect {
	if p := w.Base().Parent; p != nil {
		return p.Base().Bounds()
	}
	return s.canvas
}

func (s *Session) notify(title, message string) {
	s.notifier.Notify(title, message)
}

func (s *Session) emit(t DesignEventType, w Widget) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(s.event(t, w))
}

func (s *Session) event(t DesignEventType, w Widget) DesignEvent {
	p := w.Base()
	ev := DesignEvent{
		Type:       t,
		VarName:    p.VarName,
		WidgetType: w.TypeName(),
		X:          p.X,
		Y:          p.Y,
		Width:      p.Width,
		Height:     p.Height,
		Z:          p.Z,
	}
	if p.Parent != nil {
		ev.ParentVar = p.Parent.Base().VarName
	}
	return ev
}
