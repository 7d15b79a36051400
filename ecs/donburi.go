package ecs

import (
	derma "github.com/alandoherty/dermadesignerb"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// DesignEventType is the Donburi event type for design events.
var DesignEventType = events.NewEventType[derma.DesignEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to DesignEventType.
// Events are queued until ProcessEvents is called on the world.
func NewDonburiSink(world donburi.World) derma.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event derma.DesignEvent) {
	DesignEventType.Publish(s.world, event)
}

// WidgetData is the component Mirror keeps for every widget.
type WidgetData struct {
	VarName   string
	Type      string
	X, Y      float64
	Width     float64
	Height    float64
	Z         float64
	ParentVar string
	Selected  bool
}

// Widget is the component type holding WidgetData.
var Widget = donburi.NewComponentType[WidgetData]()

var widgetQuery = donburi.NewQuery(filter.Contains(Widget))

// Mirror keeps one entity per design widget, keyed by variable name.
type Mirror struct {
	world    donburi.World
	entities map[string]donburi.Entity
	selected string
	exports  int
	lastCode string
}

// NewMirror creates a mirror and subscribes it to DesignEventType on world.
func NewMirror(world donburi.World) *Mirror {
	m := &Mirror{world: world, entities: make(map[string]donburi.Entity)}
	DesignEventType.Subscribe(world, m.handle)
	return m
}

func (m *Mirror) handle(w donburi.World, e derma.DesignEvent) {
	switch e.Type {
	case derma.DesignExported:
		m.exports++
		m.lastCode = e.Code
		return
	case derma.DesignWidgetRemoved:
		if ent, ok := m.entities[e.VarName]; ok {
			w.Remove(ent)
			delete(m.entities, e.VarName)
		}
		if m.selected == e.VarName {
			m.selected = ""
		}
		return
	case derma.DesignDeselected:
		m.selectEntity("")
		return
	case derma.DesignRenamed:
		m.rename(e.OldVarName, e.VarName)
	}

	ent, ok := m.entities[e.VarName]
	if !ok || !w.Valid(ent) {
		ent = w.Create(Widget)
		m.entities[e.VarName] = ent
	}
	entry := w.Entry(ent)
	data := Widget.Get(entry)
	selected := data.Selected
	*data = WidgetData{
		VarName:   e.VarName,
		Type:      e.WidgetType,
		X:         e.X,
		Y:         e.Y,
		Width:     e.Width,
		Height:    e.Height,
		Z:         e.Z,
		ParentVar: e.ParentVar,
		Selected:  selected,
	}
	if e.Type == derma.DesignSelected {
		m.selectEntity(e.VarName)
	}
}

// rename re-keys the entity of old and points children of old at name.
func (m *Mirror) rename(old, name string) {
	if ent, ok := m.entities[old]; ok {
		delete(m.entities, old)
		m.entities[name] = ent
	}
	if m.selected == old {
		m.selected = name
	}
	widgetQuery.Each(m.world, func(entry *donburi.Entry) {
		if d := Widget.Get(entry); d.ParentVar == old {
			d.ParentVar = name
		}
	})
}

func (m *Mirror) selectEntity(name string) {
	if prev, ok := m.entities[m.selected]; ok && m.world.Valid(prev) {
		Widget.Get(m.world.Entry(prev)).Selected = false
	}
	m.selected = name
	if ent, ok := m.entities[name]; ok && m.world.Valid(ent) {
		Widget.Get(m.world.Entry(ent)).Selected = true
	}
}

// Lookup returns the mirrored data of the widget named name.
func (m *Mirror) Lookup(name string) (WidgetData, bool) {
	ent, ok := m.entities[name]
	if !ok || !m.world.Valid(ent) {
		return WidgetData{}, false
	}
	return *Widget.Get(m.world.Entry(ent)), true
}

// Count returns the number of mirrored widgets.
func (m *Mirror) Count() int {
	return widgetQuery.Count(m.world)
}

// Each calls fn for every mirrored widget.
func (m *Mirror) Each(fn func(WidgetData)) {
	widgetQuery.Each(m.world, func(entry *donburi.Entry) {
		fn(*Widget.Get(entry))
	})
}

// Selected returns the variable name of the selected widget, or "".
func (m *Mirror) Selected() string {
	return m.selected
}

// Exports returns how many exports were seen and the last generated code.
func (m *Mirror) Exports() (int, string) {
	return m.exports, m.lastCode
}
