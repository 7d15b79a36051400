package derma

import (
	"strings"
	"testing"
)

func TestCheckDesign(t *testing.T) {
	s, _ := newTestSession(t)
	panel := mustNew(t, s, "DPanel", 0, 0)
	btn := mustNew(t, s, "DButton", 10, 10) // newer, so emitted before panel
	if err := s.SetParent(btn, panel); err != nil {
		t.Fatal(err)
	}
	mustNew(t, s, "DLabel", 5000, 5000)

	warnings := s.CheckDesign()
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v", warnings)
	}
	var joined []string
	for _, w := range warnings {
		joined = append(joined, w.String())
	}
	all := strings.Join(joined, "\n")
	if !strings.Contains(all, `DButton1: emitted before its parent "DPanel1"`) {
		t.Errorf("missing order warning in %q", all)
	}
	if !strings.Contains(all, "DLabel1: outside the canvas") {
		t.Errorf("missing canvas warning in %q", all)
	}

	s.ParentsFirst = true
	if got := s.CheckDesign(); len(got) != 1 {
		t.Errorf("with ParentsFirst warnings = %v", got)
	}
}

func TestCheckDesignRemovedParent(t *testing.T) {
	s, _ := newTestSession(t)
	panel := mustNew(t, s, "DPanel", 0, 0)
	btn := mustNew(t, s, "DButton", 10, 10)
	btn.Base().Parent = panel
	s.Store().Remove(panel)

	got := s.CheckDesign()
	if len(got) != 1 || !strings.Contains(got[0].Message, "not part of the design") {
		t.Errorf("warnings = %v", got)
	}
}
