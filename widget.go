package derma

// PointerEvent carries pointer data to the session and to widget handlers.
// Coordinates are canvas-relative.
type PointerEvent struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Wheel deltas (valid for EventWheel)
	WheelX, WheelY float64
	// Widget is the receiver; filled in on delivery.
	Widget Widget
}

// Widget is a positioned, sized, paintable element of the design.
// Concrete widgets embed Panel, which provides Base.
type Widget interface {
	// Base returns the shared widget state.
	Base() *Panel
	// TypeName is the Derma class name passed to vgui.Create.
	TypeName() string
	// Draw paints the widget. Implementations clip to their own bounds.
	Draw(dst Surface)
	// EmitLua writes the widget-specific statements that follow the
	// construction, parent, size and position statements.
	EmitLua(w *LuaWriter)
}

// DragHook is implemented by widgets that want a say in drag moves.
// PreDrag receives the proposed position and returns whether to apply it.
// PostDrag runs after the position was updated.
type DragHook interface {
	PreDrag(x, y float64) bool
	PostDrag()
}

// Selectable is implemented by widgets that react to becoming selected.
type Selectable interface {
	OnSelect()
}

// Panel is the state shared by all widgets. It is embedded by value in
// every concrete widget type.
type Panel struct {
	// Geometry (canvas coordinates)
	X, Y          float64
	Width, Height float64

	// Z is the paint priority, assigned by the session at creation.
	Z float64

	// VarName is the Lua local that holds the widget in generated code.
	VarName string

	// Visible is emitted as SetVisible(false) when cleared. Hidden is a
	// designer-only flag: hidden widgets are neither painted nor clickable.
	Visible bool
	Hidden  bool

	// Locked widgets cannot be dragged or resized.
	Locked bool
	// Centered widgets are re-centred inside their parent (or the canvas)
	// every tick and emit Center() instead of SetPos.
	Centered bool
	// CanBeChild reports whether the widget may be parented to another.
	CanBeChild bool

	// Parent is a back reference; the store owns the widget.
	Parent Widget

	// Metadata
	UserData any

	// Per-widget handlers (nil by default; absent handlers never match).
	OnClick       func(PointerEvent)
	OnDoubleClick func(PointerEvent)
	OnPointerDown func(PointerEvent)
	OnPointerUp   func(PointerEvent)
	OnPointerMove func(PointerEvent)
	OnWheel       func(PointerEvent)

	// Drag state
	dragging    bool
	dragOffsetX float64
	dragOffsetY float64

	removed bool
}

// NewPanel returns Panel state for a widget at (x, y) with the given size.
func NewPanel(x, y, w, h float64) Panel {
	return Panel{
		X: x, Y: y, Width: w, Height: h,
		Visible:    true,
		CanBeChild: true,
	}
}

// Base returns p. Promoted to every widget embedding Panel.
func (p *Panel) Base() *Panel {
	return p
}

// Bounds returns the widget rectangle in canvas coordinates.
func (p *Panel) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// SetPos moves the widget. Children are not moved.
func (p *Panel) SetPos(x, y float64) {
	p.X = x
	p.Y = y
}

// SetSize resizes the widget.
func (p *Panel) SetSize(w, h float64) {
	p.Width = w
	p.Height = h
}

// Contains reports whether (x, y) lies inside the widget, edges included.
func (p *Panel) Contains(x, y float64) bool {
	return p.Bounds().Contains(x, y)
}

// Dragging reports whether the widget is being dragged.
func (p *Panel) Dragging() bool {
	return p.dragging
}

// Removed reports whether the widget was removed from its session.
func (p *Panel) Removed() bool {
	return p.removed
}

// PosRelativeToParent returns the position in the parent's coordinate space,
// or the canvas position when there is no parent.
func (p *Panel) PosRelativeToParent() Vec2 {
	if p.Parent == nil {
		return Vec2{X: p.X, Y: p.Y}
	}
	pp := p.Parent.Base()
	return Vec2{X: p.X - pp.X, Y: p.Y - pp.Y}
}

// PreDrag keeps a child's origin inside its parent.
func (p *Panel) PreDrag(x, y float64) bool {
	if p.Parent == nil {
		return true
	}
	return p.Parent.Base().Contains(x, y)
}

// PostDrag does nothing by default.
func (p *Panel) PostDrag() {}

// centerIn moves the widget to the middle of r.
func (p *Panel) centerIn(r Rect) {
	p.X = r.X + (r.Width-p.Width)/2
	p.Y = r.Y + (r.Height-p.Height)/2
}

// handler returns the callback for the given event kind, or nil.
func (p *Panel) handler(kind EventType) func(PointerEvent) {
	switch kind {
	case EventClick:
		return p.OnClick
	case EventDoubleClick:
		return p.OnDoubleClick
	case EventPointerDown:
		return p.OnPointerDown
	case EventPointerUp:
		return p.OnPointerUp
	case EventPointerMove:
		return p.OnPointerMove
	case EventWheel:
		return p.OnWheel
	}
	return nil
}

// isAncestor reports whether candidate is an ancestor of w (or w itself).
func isAncestor(candidate, w Widget) bool {
	for p := w; p != nil; p = p.Base().Parent {
		if p == candidate {
			return true
		}
	}
	return false
}
