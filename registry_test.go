package derma

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("DButton", func(x, y float64) Widget { return NewButton(nil, x, y) }, nil); err != nil {
		t.Fatal(err)
	}

	w, err := reg.Create("DButton", 5, 7)
	if err != nil {
		t.Fatal(err)
	}
	p := w.Base()
	if w.TypeName() != "DButton" || p.X != 5 || p.Y != 7 || p.Width != 70 || p.Height != 25 {
		t.Errorf("created %s at (%v,%v) %vx%v", w.TypeName(), p.X, p.Y, p.Width, p.Height)
	}
	if p.VarName != "" {
		t.Errorf("registry must not assign names, got %q", p.VarName)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Create("DTree", 0, 0)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("err = %v, want ErrUnknownType", err)
	}
}

func TestRegistryDuplicateFirstWins(t *testing.T) {
	reg := NewRegistry()
	first := func(x, y float64) Widget { return NewButton(nil, x, y) }
	second := func(x, y float64) Widget { return NewLabel(x, y) }

	if err := reg.Register("DButton", first, nil); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("DButton", second, nil); !errors.Is(err, ErrDuplicateType) {
		t.Fatalf("err = %v, want ErrDuplicateType", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
	w, _ := reg.Create("DButton", 0, 0)
	if _, ok := w.(*Button); !ok {
		t.Errorf("duplicate replaced the constructor: %T", w)
	}
}

func TestRegistryRejectsBadInput(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("", func(x, y float64) Widget { return NewLabel(x, y) }, nil); err == nil {
		t.Error("empty name accepted")
	}
	if err := reg.Register("DLabel", nil, nil); err == nil {
		t.Error("nil constructor accepted")
	}
	if err := reg.Register("DNil", func(x, y float64) Widget { return nil }, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Create("DNil", 0, 0); !errors.Is(err, ErrBadConstructor) {
		t.Errorf("err = %v, want ErrBadConstructor", err)
	}
}

func TestRegistryCreateBadConstructors(t *testing.T) {
	tests := []struct {
		name string
		ctor Constructor
	}{
		{"typed nil", func(x, y float64) Widget { return (*Button)(nil) }},
		{"panics", func(x, y float64) Widget { panic("no skin") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			if err := reg.Register("DBroken", tt.ctor, nil); err != nil {
				t.Fatal(err)
			}
			w, err := reg.Create("DBroken", 0, 0)
			if w != nil || !errors.Is(err, ErrBadConstructor) {
				t.Errorf("Create = %v, %v; want nil, ErrBadConstructor", w, err)
			}

			s := NewSession(reg)
			n := &recordingNotifier{}
			s.SetNotifier(n)
			if _, err := s.New("DBroken", 0, 0); err == nil {
				t.Error("New succeeded")
			}
			if s.Store().Len() != 0 || len(n.titles) != 1 || n.titles[0] != "Invalid panel constructor" {
				t.Errorf("store=%d notices=%v", s.Store().Len(), n.titles)
			}
		})
	}
}

func TestRegistryNamesKeepOrder(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterStandardWidgets(reg, nil); err != nil {
		t.Fatal(err)
	}
	want := []string{"DFrame", "DPanel", "DButton", "DLabel"}
	if got := reg.Names(); !slices.Equal(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
	if !reg.Has("DLabel") || reg.Has("DTree") {
		t.Error("Has disagrees with registrations")
	}
	if reg.Thumbnail("DButton") != nil {
		t.Error("nil skin should register no thumbnails")
	}
}

func TestRegistrySearch(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterStandardWidgets(reg, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"DFrame", "DPanel", "DButton", "DLabel"}},
		{"lab", []string{"DLabel"}},
		{"frame", []string{"DFrame"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := reg.Search(tt.query)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
