package derma

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionNamesUnique(t *testing.T) {
	s, _ := newTestSession(t)
	seen := map[string]bool{}
	for range 5 {
		for _, typ := range []string{"DButton", "DLabel", "DPanel"} {
			w := mustNew(t, s, typ, 0, 0)
			name := w.Base().VarName
			if seen[name] {
				t.Fatalf("duplicate name %q", name)
			}
			seen[name] = true
		}
	}
	if !seen["DButton1"] || !seen["DButton5"] || !seen["DLabel3"] {
		t.Errorf("names = %v", seen)
	}
}

func TestSessionNameNotReusedAfterRemove(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DButton", 0, 0)
	s.Remove(a)
	b := mustNew(t, s, "DButton", 0, 0)
	if b.Base().VarName == a.Base().VarName {
		t.Errorf("name %q reused", a.Base().VarName)
	}
}

func TestSessionNameCollisionGetsSuffix(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DButton", 0, 0)
	if err := s.Rename(a, "DButton2"); err != nil {
		t.Fatal(err)
	}
	b := mustNew(t, s, "DButton", 0, 0)
	name := b.Base().VarName
	if name == "DButton2" || !strings.HasPrefix(name, "DButton2") || len(name) != len("DButton2")+nameSuffixLen {
		t.Errorf("collision name = %q", name)
	}
	for _, r := range name[len("DButton2"):] {
		if r < 'A' || r > 'Z' {
			t.Errorf("suffix rune %q not uppercase", r)
		}
	}
}

func TestSessionZStrictlyIncreasing(t *testing.T) {
	s, _ := newTestSession(t)
	prev := -1.0
	for range 10 {
		z := mustNew(t, s, "DLabel", 0, 0).Base().Z
		if z <= prev {
			t.Fatalf("Z %v not above %v", z, prev)
		}
		prev = z
	}
}

func TestSessionUnknownTypeNotifies(t *testing.T) {
	s, n := newTestSession(t)
	w, err := s.New("DTree", 0, 0)
	if w != nil || !errors.Is(err, ErrUnknownType) {
		t.Fatalf("New(DTree) = %v, %v", w, err)
	}
	if len(n.titles) != 1 || n.titles[0] != "Invalid panel type" || !strings.Contains(n.messages[0], "DTree") {
		t.Errorf("notifications = %v %v", n.titles, n.messages)
	}
	if s.Store().Len() != 0 {
		t.Error("failed creation left a widget behind")
	}
}

func TestSessionSetParent(t *testing.T) {
	s, n := newTestSession(t)
	panel := mustNew(t, s, "DPanel", 0, 0)
	inner := mustNew(t, s, "DPanel", 10, 10)
	frame := mustNew(t, s, "DFrame", 0, 0)

	if err := s.SetParent(inner, panel); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParent(panel, inner); !errors.Is(err, ErrParentCycle) {
		t.Errorf("cycle err = %v", err)
	}
	if err := s.SetParent(panel, panel); !errors.Is(err, ErrParentCycle) {
		t.Errorf("self-parent err = %v", err)
	}
	if err := s.SetParent(frame, panel); !errors.Is(err, ErrCannotParent) {
		t.Errorf("frame err = %v", err)
	}
	if len(n.titles) != 3 {
		t.Errorf("expected 3 notifications, got %v", n.titles)
	}
	if err := s.SetParent(inner, nil); err != nil || inner.Base().Parent != nil {
		t.Errorf("detach: %v, parent %v", err, inner.Base().Parent)
	}
	if err := s.SetParent(NewLabel(0, 0), panel); !errors.Is(err, ErrNotInSession) {
		t.Errorf("foreign widget err = %v", err)
	}
}

func TestSessionRemoveUnparentsChildren(t *testing.T) {
	s, _ := newTestSession(t)
	panel := mustNew(t, s, "DPanel", 0, 0)
	child := mustNew(t, s, "DButton", 10, 10)
	if err := s.SetParent(child, panel); err != nil {
		t.Fatal(err)
	}
	s.Select(panel)

	if !s.Remove(panel) {
		t.Fatal("Remove = false")
	}
	if child.Base().Parent != nil {
		t.Error("child still references removed parent")
	}
	if s.Selected() != nil {
		t.Error("removed widget still selected")
	}
	if !panel.Base().Removed() {
		t.Error("Removed() = false")
	}
	if s.Remove(panel) {
		t.Error("second Remove = true")
	}
}

func TestSessionRename(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DButton", 0, 0)
	b := mustNew(t, s, "DButton", 0, 0)

	for _, bad := range []string{"", "1abc", "end", "has space"} {
		if err := s.Rename(a, bad); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Rename(%q) = %v", bad, err)
		}
	}
	if err := s.Rename(a, b.Base().VarName); !errors.Is(err, ErrNameInUse) {
		t.Errorf("rename to taken name = %v", err)
	}
	if err := s.Rename(a, "okButton"); err != nil || a.Base().VarName != "okButton" {
		t.Errorf("Rename = %v, name %q", err, a.Base().VarName)
	}
	if err := s.Rename(a, "okButton"); err != nil {
		t.Errorf("renaming to own name = %v", err)
	}
}

func TestSessionReorder(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DLabel", 0, 0)
	b := mustNew(t, s, "DLabel", 0, 0)
	c := mustNew(t, s, "DLabel", 0, 0)

	s.BringToFront(a)
	if s.Store().At(0) != a {
		t.Errorf("front = %s", s.Store().At(0).Base().VarName)
	}
	s.SendToBack(c)
	if s.Store().At(2) != c {
		t.Errorf("back = %s", s.Store().At(2).Base().VarName)
	}
	if s.Store().IndexOf(b) != 1 {
		t.Errorf("middle moved")
	}
}

func TestSessionCenteredFollowsContainer(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetCanvasSize(400, 300)
	panel := mustNew(t, s, "DPanel", 100, 100) // 100x100
	btn := mustNew(t, s, "DButton", 0, 0)      // 70x25
	btn.Base().Centered = true
	if err := s.SetParent(btn, panel); err != nil {
		t.Fatal(err)
	}
	if p := btn.Base(); p.X != 115 || p.Y != 137.5 {
		t.Errorf("centred at (%v, %v), want (115, 137.5)", p.X, p.Y)
	}

	panel.Base().SetPos(200, 0)
	s.Tick(0.02)
	if p := btn.Base(); p.X != 215 || p.Y != 37.5 {
		t.Errorf("after tick at (%v, %v), want (215, 37.5)", p.X, p.Y)
	}
}

func TestSessionEvents(t *testing.T) {
	s, _ := newTestSession(t)
	var got []DesignEventType
	s.SetEventSink(EventSinkFunc(func(e DesignEvent) { got = append(got, e.Type) }))

	w := mustNew(t, s, "DButton", 0, 0)
	s.Select(w)
	s.PointerDown(leftAt(5, 5))
	s.PointerMove(leftAt(15, 5))
	s.PointerUp(leftAt(15, 5))
	s.Remove(w)
	s.Export()

	want := []DesignEventType{DesignWidgetCreated, DesignSelected, DesignMoved, DesignDeselected, DesignWidgetRemoved, DesignExported}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSessionEventsFollowIndirectChanges(t *testing.T) {
	s, _ := newTestSession(t)
	var got []DesignEvent
	s.SetEventSink(EventSinkFunc(func(e DesignEvent) { got = append(got, e) }))

	panel := mustNew(t, s, "DPanel", 0, 0)
	child := mustNew(t, s, "DButton", 10, 10)
	if err := s.SetParent(child, panel); err != nil {
		t.Fatal(err)
	}
	if err := s.Rename(panel, "Body"); err != nil {
		t.Fatal(err)
	}
	s.Select(panel)
	got = got[:0]

	s.PointerDown(leftAt(50, 50))
	s.PointerMove(leftAt(60, 50))
	s.PointerUp(leftAt(60, 50))
	moved := map[string]float64{}
	for _, e := range got {
		if e.Type == DesignMoved {
			moved[e.VarName] = e.X
		}
	}
	if moved["Body"] != 10 || moved["DButton1"] != 20 {
		t.Errorf("moved = %v", moved)
	}

	got = got[:0]
	if err := s.Rename(child, "Ok"); err != nil {
		t.Fatal(err)
	}
	s.Deselect()
	if len(got) != 2 {
		t.Fatalf("events = %+v", got)
	}
	if e := got[0]; e.Type != DesignRenamed || e.VarName != "Ok" || e.OldVarName != "DButton1" || e.ParentVar != "Body" {
		t.Errorf("rename event = %+v", e)
	}
	if e := got[1]; e.Type != DesignDeselected || e.VarName != "Body" {
		t.Errorf("deselect event = %+v", e)
	}
}
