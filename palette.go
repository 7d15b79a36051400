package derma

import "strings"

const (
	paletteItemHeight = 44.0
	paletteThumbSize  = 32.0
	palettePadding    = 6.0
	paletteFilterH    = 20.0
)

var (
	colorPaletteBackground = RGB(45, 45, 45)
	colorPaletteFilter     = RGB(30, 30, 30)
	colorPaletteArmed      = RGB(70, 110, 70)
)

// Palette is the strip of registered widget types beside the canvas. Typing
// narrows it with a fuzzy filter; picking an entry arms it so the next
// primary press on the canvas creates a widget of that type.
type Palette struct {
	registry *Registry
	// Width of the strip in pixels.
	Width float64

	filter string
	armed  string
	scroll float64
}

// NewPalette creates a palette over reg.
func NewPalette(reg *Registry, width float64) *Palette {
	return &Palette{registry: reg, Width: width}
}

// Items returns the type names currently listed, best filter match first.
func (p *Palette) Items() []string {
	return p.registry.Search(p.filter)
}

// SetFilter replaces the search query and scrolls back to the top.
func (p *Palette) SetFilter(q string) {
	p.filter = strings.TrimLeft(q, " ")
	p.scroll = 0
}

// Filter returns the search query.
func (p *Palette) Filter() string {
	return p.filter
}

// Scroll moves the list by dy items' worth of wheel motion.
func (p *Palette) Scroll(dy float64) {
	p.scroll -= dy * paletteItemHeight / 2
	maxScroll := max(float64(len(p.Items()))*paletteItemHeight-paletteItemHeight, 0)
	p.scroll = max(min(p.scroll, maxScroll), 0)
}

// ItemAt returns the type name listed at strip coordinates (x, y), or "".
func (p *Palette) ItemAt(x, y float64) string {
	if x < 0 || x >= p.Width || y < paletteFilterH {
		return ""
	}
	i := int((y - paletteFilterH + p.scroll) / paletteItemHeight)
	items := p.Items()
	if i < 0 || i >= len(items) {
		return ""
	}
	return items[i]
}

// Arm marks name as the type to place on the next canvas press. Reports
// false when name is not registered.
func (p *Palette) Arm(name string) bool {
	if !p.registry.Has(name) {
		return false
	}
	p.armed = name
	return true
}

// Armed returns the armed type name, or "".
func (p *Palette) Armed() string {
	return p.armed
}

// Disarm clears the armed type.
func (p *Palette) Disarm() {
	p.armed = ""
}

// Draw paints the filter box and the visible entries.
func (p *Palette) Draw(dst Surface) {
	b := dst.Bounds()
	dst.FillRect(b, colorPaletteBackground)

	box := Rect{X: b.X, Y: b.Y, Width: p.Width, Height: paletteFilterH}
	dst.FillRect(box, colorPaletteFilter)
	label := p.filter
	if label == "" {
		label = "type to search"
	}
	_, th := dst.MeasureText(label)
	dst.DrawText(label, box.X+palettePadding, box.Y+(box.Height-th)/2, ColorText)

	list := dst.Clip(Rect{X: b.X, Y: b.Y + paletteFilterH, Width: p.Width, Height: b.Height - paletteFilterH})
	y := b.Y + paletteFilterH - p.scroll
	for _, name := range p.Items() {
		row := Rect{X: b.X, Y: y, Width: p.Width, Height: paletteItemHeight}
		if name == p.armed {
			list.FillRect(row, colorPaletteArmed)
		}
		thumb := Rect{X: row.X + palettePadding, Y: row.Y + (paletteItemHeight-paletteThumbSize)/2, Width: paletteThumbSize, Height: paletteThumbSize}
		list.DrawImage(p.registry.Thumbnail(name), thumb, 1)
		_, h := list.MeasureText(name)
		list.DrawText(name, thumb.X+thumb.Width+palettePadding, row.Y+(paletteItemHeight-h)/2, ColorText)
		y += paletteItemHeight
	}
}
