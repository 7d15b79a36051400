package derma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LuaWriter accumulates generated Lua for one or more widgets.
type LuaWriter struct {
	b strings.Builder
}

// Linef writes one formatted statement followed by a newline.
func (w *LuaWriter) Linef(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// Call writes `<v>:<method>(<args>)` for the widget's variable.
func (w *LuaWriter) Call(v, method string, args ...string) {
	w.Linef("%s:%s(%s)", v, method, strings.Join(args, ", "))
}

// Raw writes s verbatim.
func (w *LuaWriter) Raw(s string) {
	w.b.WriteString(s)
}

// String returns everything written so far.
func (w *LuaWriter) String() string {
	return w.b.String()
}

// Len returns the number of bytes written so far.
func (w *LuaWriter) Len() int {
	return w.b.Len()
}

// Generate concatenates the Lua of every widget in store order. A child is
// emitted wherever it sits in the store, so it may reference a parent that
// is only declared further down; see GenerateParentsFirst.
func (s *Session) Generate() string {
	var w LuaWriter
	for _, wd := range s.store.All() {
		emitWidget(&w, wd)
	}
	return w.String()
}

// GenerateParentsFirst emits the same fragments as Generate, in store order,
// except that a widget is held back until its parent has been emitted.
func (s *Session) GenerateParentsFirst() string {
	var w LuaWriter
	emitted := make(map[Widget]bool, s.store.Len())
	var visit func(wd Widget)
	visit = func(wd Widget) {
		if emitted[wd] {
			return
		}
		if p := wd.Base().Parent; p != nil && !emitted[p] && s.store.IndexOf(p) >= 0 {
			visit(p)
		}
		emitted[wd] = true
		emitWidget(&w, wd)
	}
	for _, wd := range s.store.All() {
		visit(wd)
	}
	return w.String()
}

// EmitWidget returns the Lua for a single widget.
func EmitWidget(wd Widget) string {
	var w LuaWriter
	emitWidget(&w, wd)
	return w.String()
}

// emitWidget writes the shared template around the widget's own statements:
// construction, parent, size, centre or position, extras, visibility.
func emitWidget(w *LuaWriter, wd Widget) {
	p := wd.Base()
	v := p.VarName
	w.Raw("\n")
	w.Linef("local %s = vgui.Create(%s)", v, LuaQuote(wd.TypeName()))
	if p.Parent != nil {
		w.Call(v, "SetParent", p.Parent.Base().VarName)
	}
	w.Call(v, "SetSize", LuaNumber(p.Width), LuaNumber(p.Height))
	if p.Centered {
		w.Call(v, "Center")
	} else {
		pos := p.PosRelativeToParent()
		w.Call(v, "SetPos", LuaNumber(pos.X), LuaNumber(pos.Y))
	}
	wd.EmitLua(w)
	if !p.Visible {
		w.Call(v, "SetVisible", "false")
	}
}

// LuaNumber formats a pixel value, rounded to the nearest integer.
func LuaNumber(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// LuaBool formats a boolean literal.
func LuaBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// LuaQuote returns s as a single-quoted Lua string literal.
func LuaQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
