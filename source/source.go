// Package source describes positions and spans within parsed input.
package source

import "fmt"

// Position is a resolved point in the input.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is the half-open span [Start, End) of the input. A zero-width
// location (Start == End) marks a point such as the end of input.
type Location struct {
	Source any // opaque tag supplied by the caller, nil when absent
	Start  Position
	End    Position
}

// IsEmpty reports whether the location spans no input.
func (l Location) IsEmpty() bool {
	return l.Start.Offset == l.End.Offset
}

func (l Location) String() string {
	span := l.Start.String() + "-" + l.End.String()
	if l.Source == nil {
		return span
	}
	return fmt.Sprintf("%v:%s", l.Source, span)
}
