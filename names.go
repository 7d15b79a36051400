package derma

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const nameSuffixLen = 4

// nameAllocator hands out Lua variable names. A name is never reused within
// a session, even after its widget is removed.
type nameAllocator struct {
	used   map[string]bool
	counts map[string]int
	rng    *rand.Rand
}

func newNameAllocator() nameAllocator {
	return nameAllocator{
		used:   make(map[string]bool),
		counts: make(map[string]int),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// next returns typeName followed by the per-type sequence number. On a
// collision, random uppercase letters are appended until the name is free.
func (a *nameAllocator) next(typeName string) string {
	a.counts[typeName]++
	base := typeName + strconv.Itoa(a.counts[typeName])
	name := base
	for a.used[name] {
		name = base + a.randomSuffix(nameSuffixLen)
	}
	a.used[name] = true
	return name
}

// reserve claims name, reporting false if it is taken.
func (a *nameAllocator) reserve(name string) bool {
	if a.used[name] {
		return false
	}
	a.used[name] = true
	return true
}

func (a *nameAllocator) randomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('A' + a.rng.IntN(26)))
	}
	return b.String()
}

// validLuaName reports whether s is a usable Lua identifier.
func validLuaName(s string) bool {
	if s == "" || luaKeywords[s] {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}
