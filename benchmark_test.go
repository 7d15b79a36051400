package derma

import (
	"fmt"
	"testing"
)

// setupBenchSession creates a session with n buttons laid out in a grid.
func setupBenchSession(b *testing.B, n int) *Session {
	b.Helper()
	reg := NewRegistry()
	if err := RegisterStandardWidgets(reg, nil); err != nil {
		b.Fatal(err)
	}
	s := NewSession(reg)
	s.SetNotifier(&recordingNotifier{})
	for i := range n {
		if _, err := s.New("DButton", float64(i%20)*40, float64(i/20)*30); err != nil {
			b.Fatal(err)
		}
	}
	return s
}

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			s := setupBenchSession(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				_ = s.Generate()
			}
		})
	}
}

func BenchmarkPointerMove_Dragging(b *testing.B) {
	s := setupBenchSession(b, 1000)
	s.PointerDown(leftAt(5, 5))
	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		s.PointerMove(leftAt(float64(5+i%50), 5))
	}
}

func BenchmarkPaint(b *testing.B) {
	s := setupBenchSession(b, 1000)
	rec := newRecorder(800, 600)
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		*rec.ops = (*rec.ops)[:0]
		s.Paint(rec)
	}
}
