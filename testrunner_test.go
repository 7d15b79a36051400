package derma

import (
	"strings"
	"testing"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{`, "parse test script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"fly"}]}`, `unknown action "fly"`},
		{"unknown command", `{"steps":[{"action":"command","command":"fly"}]}`, `unknown command "fly"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestTestRunnerPlaysScript(t *testing.T) {
	g := newTestGame(t)
	var exported string
	g.OnExport = func(code string) error { exported = code; return nil }

	runner, err := LoadTestScript([]byte(`{"steps":[
		{"action":"create","type":"DButton","x":10,"y":10,"label":"okButton"},
		{"action":"click","x":135,"y":15},
		{"action":"command","command":"lock"},
		{"action":"wait","frames":3},
		{"action":"filter","filter":"pan"},
		{"action":"create","type":"DTree"},
		{"action":"export"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	for i := 0; i < 50 && !runner.Done(); i++ {
		run(g, 1)
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}

	s := g.Session()
	sel := s.Selected()
	if sel == nil || sel.Base().VarName != "okButton" || !sel.Base().Locked {
		t.Errorf("selected = %+v", sel)
	}
	if g.Palette().Filter() != "pan" {
		t.Errorf("filter = %q", g.Palette().Filter())
	}
	if errs := runner.Errors(); len(errs) != 1 {
		t.Errorf("errors = %v, want the DTree failure", errs)
	}
	if !strings.Contains(exported, "local okButton = vgui.Create('DButton')") {
		t.Errorf("exported %q", exported)
	}
}

func TestTestRunnerWaitsForInjectedInput(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps":[
		{"action":"drag","fromX":0,"fromY":0,"toX":10,"toY":10,"frames":6},
		{"action":"screenshot","label":"after drag"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	run(g, 1) // queues the drag and consumes its first event
	if g.Pending() != 5 || len(g.screenshotQueue) != 0 {
		t.Fatalf("pending=%d screenshots=%v", g.Pending(), g.screenshotQueue)
	}
	run(g, 5)
	run(g, 1)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after drag" {
		t.Errorf("screenshots = %v", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g := newTestGame(t)
	g.InjectDrag(0, 0, 50, 50, 0)
	if g.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", g.Pending())
	}
	evt := g.injectQueue[1]
	if evt.pressed || evt.x != 50 || evt.y != 50 {
		t.Errorf("last event = %+v, want release at (50, 50)", evt)
	}
}
