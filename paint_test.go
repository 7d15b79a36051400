package derma

import "testing"

func TestPaintBackToFront(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DButton", 0, 0).(*Button)
	b := mustNew(t, s, "DButton", 10, 10).(*Button)
	a.Text = "first"
	b.Text = "second"

	rec := newRecorder(800, 600)
	s.Paint(rec)

	texts := rec.texts()
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Errorf("paint order = %v, want [first second]", texts)
	}
}

func TestPaintSkipsHidden(t *testing.T) {
	s, _ := newTestSession(t)
	a := mustNew(t, s, "DButton", 0, 0).(*Button)
	a.Hidden = true

	rec := newRecorder(800, 600)
	s.Paint(rec)
	if len(rec.all()) != 0 {
		t.Errorf("hidden widget painted: %+v", rec.all())
	}
}

func TestPaintHighlightsSelection(t *testing.T) {
	s, _ := newTestSession(t)
	w := mustNew(t, s, "DButton", 10, 20)
	s.Select(w)

	rec := newRecorder(800, 600)
	s.Paint(rec)
	ops := rec.all()
	if len(ops) == 0 {
		t.Fatal("nothing painted")
	}

	hl := ops[0]
	want := Rect{X: 9, Y: 19, Width: 72, Height: 27}
	if hl.kind != "fill" || hl.rect != want || hl.clip != want {
		t.Errorf("highlight = %+v, want fill of %+v", hl, want)
	}
	if hl.color.R != ColorHighlight.R || hl.color.G != ColorHighlight.G || hl.color.A != s.pulse.Alpha() {
		t.Errorf("highlight color = %+v", hl.color)
	}

	// The grip goes on top of everything.
	grip, _ := s.Grip().Rect()
	last := ops[len(ops)-1]
	if last.kind != "fill" || last.rect != grip.Expand(-1) || last.color != ColorGrip {
		t.Errorf("last op = %+v, want grip", last)
	}
}

func TestWidgetDrawClipsToBounds(t *testing.T) {
	s, _ := newTestSession(t)
	mustNew(t, s, "DPanel", 30, 40)

	rec := newRecorder(800, 600)
	s.Paint(rec)
	want := Rect{X: 30, Y: 40, Width: 100, Height: 100}
	for _, op := range rec.all() {
		if op.clip != want {
			t.Errorf("op %+v drawn outside widget clip", op)
		}
	}
}

func TestFrameDrawsTitleAndClose(t *testing.T) {
	f := NewFrame(nil, 0, 0)
	f.Title = "Options"
	rec := newRecorder(800, 600)
	f.Draw(rec)

	texts := rec.texts()
	if len(texts) != 2 || texts[0] != "Options" || texts[1] != "x" {
		t.Errorf("texts = %v", texts)
	}
	f.ShowClose = false
	rec = newRecorder(800, 600)
	f.Draw(rec)
	if len(rec.texts()) != 1 {
		t.Errorf("close button drawn when hidden: %v", rec.texts())
	}
}

func TestPanelWithoutBackgroundDrawsOutline(t *testing.T) {
	p := NewBasicPanel(nil, 0, 0)
	p.PaintBackground = false
	rec := newRecorder(800, 600)
	p.Draw(rec)
	if n := len(rec.all()); n != 4 {
		t.Errorf("outline ops = %d, want 4", n)
	}
}
