package derma

import (
	"fmt"
	"os"
)

// debugLogf prints a diagnostic line to stderr when debug mode is on.
func (s *Session) debugLogf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[derma] "+format+"\n", args...)
}

// debugMaxNesting is the parent chain depth above which CheckDesign warns.
const debugMaxNesting = 16

// debugMaxWidgets is the design size above which CheckDesign warns.
const debugMaxWidgets = 1000

// DesignWarning is one problem found by CheckDesign.
type DesignWarning struct {
	VarName string
	Message string
}

func (w DesignWarning) String() string {
	if w.VarName == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.VarName, w.Message)
}

// CheckDesign reports problems that make the generated Lua misbehave at
// runtime: children emitted before their parent, parents that are no longer
// part of the design, deep nesting and widgets outside the canvas. In debug
// mode every warning is also printed to stderr.
func (s *Session) CheckDesign() []DesignWarning {
	var out []DesignWarning
	add := func(v, format string, args ...any) {
		w := DesignWarning{VarName: v, Message: fmt.Sprintf(format, args...)}
		out = append(out, w)
		s.debugLogf("warning: %s", w)
	}

	widgets := s.store.All()
	if len(widgets) > debugMaxWidgets {
		add("", "design has %d widgets (threshold %d)", len(widgets), debugMaxWidgets)
	}
	for i, w := range widgets {
		p := w.Base()
		if parent := p.Parent; parent != nil {
			j := s.store.IndexOf(parent)
			switch {
			case j < 0:
				add(p.VarName, "parent %q is not part of the design", parent.Base().VarName)
			case j > i && !s.ParentsFirst:
				add(p.VarName, "emitted before its parent %q", parent.Base().VarName)
			}
		}
		depth := 0
		for q := p.Parent; q != nil; q = q.Base().Parent {
			depth++
		}
		if depth > debugMaxNesting {
			add(p.VarName, "nesting depth %d exceeds %d", depth, debugMaxNesting)
		}
		if !p.Bounds().Intersects(s.canvas) {
			add(p.VarName, "outside the canvas")
		}
	}
	return out
}
