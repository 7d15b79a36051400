package derma

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sahilm/fuzzy"
)

var (
	// ErrUnknownType is returned when a widget type name is not registered.
	ErrUnknownType = errors.New("unknown panel type")
	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("panel type already registered")
	// ErrBadConstructor is returned when a constructor produces no widget.
	ErrBadConstructor = errors.New("panel constructor returned no widget")
)

// Constructor builds a new widget at the given canvas position.
type Constructor func(x, y float64) Widget

type registryEntry struct {
	name  string
	ctor  Constructor
	thumb *ebiten.Image
}

// Registry maps widget type names to constructors and palette thumbnails.
// Entries keep their registration order, which is the palette order.
type Registry struct {
	entries []registryEntry
	index   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a widget type. The first registration of a name wins; later
// ones return ErrDuplicateType and leave the registry unchanged.
func (r *Registry) Register(name string, ctor Constructor, thumb *ebiten.Image) error {
	if name == "" {
		return fmt.Errorf("derma: register: empty type name")
	}
	if ctor == nil {
		return fmt.Errorf("derma: register %q: nil constructor", name)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("derma: register %q: %w", name, ErrDuplicateType)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, registryEntry{name: name, ctor: ctor, thumb: thumb})
	return nil
}

// Create invokes the constructor registered under name. The returned widget
// has no Z or variable name yet; Session.New assigns both. A constructor
// that panics or returns a nil widget (typed or not) yields
// ErrBadConstructor.
func (r *Registry) Create(name string, x, y float64) (w Widget, err error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("derma: create %q: %w", name, ErrUnknownType)
	}
	defer func() {
		if rec := recover(); rec != nil {
			w = nil
			err = fmt.Errorf("derma: create %q: %w: %v", name, ErrBadConstructor, rec)
		}
	}()
	w = r.entries[i].ctor(x, y)
	if w == nil || w.Base() == nil {
		return nil, fmt.Errorf("derma: create %q: %w", name, ErrBadConstructor)
	}
	return w, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Thumbnail returns the palette image for name, or nil.
func (r *Registry) Thumbnail(name string) *ebiten.Image {
	if i, ok := r.index[name]; ok {
		return r.entries[i].thumb
	}
	return nil
}

// Search returns the type names fuzzy-matching query, best match first.
// An empty query returns every name in registration order.
func (r *Registry) Search(query string) []string {
	if query == "" {
		return r.Names()
	}
	matches := fuzzy.Find(query, r.Names())
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
