package derma

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an automation script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Type    string  `json:"type,omitempty"`
	Command string  `json:"command,omitempty"`
	Filter  string  `json:"filter,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner plays a JSON script of injected input, widget creation,
// commands and screenshots, one step per tick. Attach it with
// Game.SetTestRunner.
//
// Actions: click, drag, wait, screenshot, create (type, x, y in canvas
// coordinates), command (command name, see Command), filter, export.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON script. Unknown actions and commands are
// rejected here rather than while running.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("derma: parse test script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("derma: parse test script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "click", "drag", "wait", "screenshot", "create", "filter", "export":
		case "command":
			if _, ok := ParseCommand(st.Command); !ok {
				return nil, fmt.Errorf("derma: parse test script: step %d: unknown command %q", i, st.Command)
			}
		default:
			return nil, fmt.Errorf("derma: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// SetTestRunner attaches runner; it is stepped at the start of every tick.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// Errors returns the failures of create steps, in order.
func (r *TestRunner) Errors() []error {
	return r.errs
}

// step advances the runner by one tick.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Let injected input drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "create":
		if w, err := g.session.New(st.Type, st.X, st.Y); err != nil {
			r.errs = append(r.errs, err)
		} else if st.Label != "" {
			if err := g.session.Rename(w, st.Label); err != nil {
				r.errs = append(r.errs, err)
			}
		}
	case "command":
		cmd, _ := ParseCommand(st.Command)
		g.Execute(cmd)
	case "filter":
		g.palette.SetFilter(st.Filter)
	case "export":
		g.Execute(CmdExport)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}
