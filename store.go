package derma

import (
	"cmp"
	"slices"
)

// Store is the ordered collection of every widget in the design. The newest
// widget is first, so it is hit-tested before older ones.
type Store struct {
	widgets []Widget
}

// InsertFront adds w at the front of the store.
// Panics if w is nil.
func (s *Store) InsertFront(w Widget) {
	if w == nil {
		panic("derma: cannot insert nil widget")
	}
	s.widgets = append(s.widgets, nil)
	copy(s.widgets[1:], s.widgets)
	s.widgets[0] = w
}

// All returns the widgets in store order. The returned slice MUST NOT be
// mutated by the caller.
func (s *Store) All() []Widget {
	return s.widgets
}

// Len returns the number of widgets.
func (s *Store) Len() int {
	return len(s.widgets)
}

// At returns the widget at index i.
func (s *Store) At(i int) Widget {
	return s.widgets[i]
}

// IndexOf returns the position of w, or -1.
func (s *Store) IndexOf(w Widget) int {
	for i, c := range s.widgets {
		if c == w {
			return i
		}
	}
	return -1
}

// Remove deletes w from the store, reporting whether it was present.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Store) Remove(w Widget) bool {
	i := s.IndexOf(w)
	if i < 0 {
		return false
	}
	copy(s.widgets[i:], s.widgets[i+1:])
	s.widgets[len(s.widgets)-1] = nil
	s.widgets = s.widgets[:len(s.widgets)-1]
	return true
}

// ResortByZ orders the store by descending Z. Membership is unchanged.
func (s *Store) ResortByZ() {
	slices.SortStableFunc(s.widgets, func(a, b Widget) int {
		return cmp.Compare(b.Base().Z, a.Base().Z)
	})
}

// FirstAt returns the first widget in store order containing (x, y) for
// which accept returns true. A nil accept matches any widget.
func (s *Store) FirstAt(x, y float64, accept func(Widget) bool) Widget {
	for _, w := range s.widgets {
		if IsOver(w, x, y) && (accept == nil || accept(w)) {
			return w
		}
	}
	return nil
}

// WidgetsAt returns every widget containing (x, y), in store order.
func (s *Store) WidgetsAt(x, y float64) []Widget {
	var out []Widget
	for _, w := range s.widgets {
		if IsOver(w, x, y) {
			out = append(out, w)
		}
	}
	return out
}

// AnyAt reports whether any widget contains (x, y).
func (s *Store) AnyAt(x, y float64) bool {
	return s.FirstAt(x, y, nil) != nil
}

// IsOver reports whether (x, y) lies within w's rectangle, edges included.
func IsOver(w Widget, x, y float64) bool {
	return w.Base().Contains(x, y)
}
