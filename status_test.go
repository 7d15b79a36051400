package derma

import (
	"strings"
	"testing"
)

func TestStatusBarInspects(t *testing.T) {
	s, _ := newTestSession(t)
	bar := NewStatusBar()
	s.SetInspector(bar)

	panel := mustNew(t, s, "DPanel", 0, 0)
	btn := mustNew(t, s, "DButton", 10, 20)
	if err := s.SetParent(btn, panel); err != nil {
		t.Fatal(err)
	}
	btn.Base().Locked = true
	s.Select(btn)

	text := bar.Text()
	for _, want := range []string{"DButton1 (DButton)", "x=10 y=20", "w=70 h=25", "parent=DPanel1", "[locked]"} {
		if !strings.Contains(text, want) {
			t.Errorf("status %q missing %q", text, want)
		}
	}

	btn.Base().Locked = false
	s.PointerDown(leftAt(15, 25))
	s.PointerMove(leftAt(25, 25))
	if !strings.Contains(bar.Text(), "x=20 y=20") {
		t.Errorf("status not refreshed on drag: %q", bar.Text())
	}

	s.Deselect()
	if bar.Text() != "nothing selected" {
		t.Errorf("status after deselect = %q", bar.Text())
	}
}

func TestStatusBarRate(t *testing.T) {
	bar := NewStatusBar()
	bar.Update(statusInterval / 2)
	if bar.rate != "" {
		t.Error("rate refreshed too early")
	}
	bar.Update(statusInterval)
	if !strings.HasPrefix(bar.rate, "FPS: ") {
		t.Errorf("rate = %q", bar.rate)
	}

	rec := newRecorder(600, statusHeight)
	bar.Draw(rec)
	if len(rec.texts()) != 2 {
		t.Errorf("texts = %v", rec.texts())
	}
}
