package peg

import (
	"unicode/utf8"

	"github.com/KimNorgaard/go-peg/source"
)

// positionCache resolves offsets to lines and columns by scanning forward
// from the nearest resolved offset at or below the target, then remembering
// the result. Slots with Line == 0 are unresolved. Only offsets at the start
// of a character are remembered, so every scan starts on a rune boundary.
type positionCache struct {
	input string
	base  int
	slots []source.Position
	high  int // furthest resolved offset
}

func newPositionCache(input string, base source.Position) positionCache {
	c := positionCache{
		input: input,
		base:  base.Offset,
		slots: make([]source.Position, len(input)+1),
		high:  base.Offset,
	}
	c.slots[base.Offset] = base
	return c
}

// position resolves offset. Offsets before the baseline resolve to the
// baseline, offsets past the end of input to the end of input.
func (c *positionCache) position(offset int) source.Position {
	offset = min(max(offset, c.base), len(c.input))
	if p := c.slots[offset]; p.Line != 0 {
		return p
	}

	from := c.high
	if offset < c.high {
		from = offset - 1
		for c.slots[from].Line == 0 {
			from--
		}
	}

	p := c.slots[from]
	for i := p.Offset; i < offset; {
		r, w := utf8.DecodeRuneInString(c.input[i:])
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		i += w
	}
	p.Offset = offset

	if !c.runeStart(offset) {
		return p
	}
	c.slots[offset] = p
	if offset > c.high {
		c.high = offset
	}
	return p
}

func (c *positionCache) runeStart(offset int) bool {
	return offset == len(c.input) || utf8.RuneStart(c.input[offset])
}
