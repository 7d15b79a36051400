package derma

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Recording surface ---

type drawOp struct {
	kind  string // "fill", "image", "text"
	rect  Rect
	clip  Rect
	color Color
	text  string
	alpha float64
	img   *ebiten.Image
}

// recordingSurface records draw calls instead of rasterising them. Clipped
// surfaces share the parent's op log.
type recordingSurface struct {
	bounds Rect
	ops    *[]drawOp
}

func newRecorder(w, h float64) *recordingSurface {
	return &recordingSurface{bounds: Rect{Width: w, Height: h}, ops: new([]drawOp)}
}

func (s *recordingSurface) Bounds() Rect { return s.bounds }

func (s *recordingSurface) FillRect(r Rect, c Color) {
	*s.ops = append(*s.ops, drawOp{kind: "fill", rect: r, clip: s.bounds, color: c})
}

func (s *recordingSurface) DrawImage(img *ebiten.Image, dst Rect, alpha float64) {
	if img == nil {
		return
	}
	*s.ops = append(*s.ops, drawOp{kind: "image", rect: dst, clip: s.bounds, alpha: alpha, img: img})
}

func (s *recordingSurface) DrawText(str string, x, y float64, c Color) {
	*s.ops = append(*s.ops, drawOp{kind: "text", rect: Rect{X: x, Y: y}, clip: s.bounds, color: c, text: str})
}

// MeasureText uses a fixed 6x10 cell per rune.
func (s *recordingSurface) MeasureText(str string) (float64, float64) {
	return float64(len([]rune(str))) * 6, 10
}

func (s *recordingSurface) Clip(r Rect) Surface {
	return &recordingSurface{bounds: s.bounds.Intersect(r), ops: s.ops}
}

func (s *recordingSurface) all() []drawOp { return *s.ops }

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range *s.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// --- Session fixtures ---

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

type countingInspector struct {
	inspected []Widget
	refreshes int
}

func (in *countingInspector) Inspect(w Widget) { in.inspected = append(in.inspected, w) }
func (in *countingInspector) Refresh()         { in.refreshes++ }

// newTestSession returns a session with the standard widgets, no skin and a
// recording notifier.
func newTestSession(t *testing.T) (*Session, *recordingNotifier) {
	t.Helper()
	reg := NewRegistry()
	if err := RegisterStandardWidgets(reg, nil); err != nil {
		t.Fatalf("RegisterStandardWidgets: %v", err)
	}
	s := NewSession(reg)
	n := &recordingNotifier{}
	s.SetNotifier(n)
	return s, n
}

func mustNew(t *testing.T, s *Session, typeName string, x, y float64) Widget {
	t.Helper()
	w, err := s.New(typeName, x, y)
	if err != nil {
		t.Fatalf("New(%q): %v", typeName, err)
	}
	return w
}

func leftAt(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y, Button: MouseButtonLeft}
}
