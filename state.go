package peg

import (
	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/source"
	"github.com/KimNorgaard/go-peg/trace"
	"golang.org/x/text/cases"
)

// Rule is a parsing function run against a State. It reports whether it
// matched; a false result is a recoverable failure that lets the caller try
// another alternative.
type Rule func(s *State) (any, bool)

// frame records the furthest offset at which expectations were registered
// during one rule invocation and the alternatives expected there.
type frame struct {
	offset   int
	variants []errors.Expectation
}

// State is the mutable state of a single parse. It must not be shared
// between parses or goroutines.
type State struct {
	input  string
	source any
	tracer trace.Tracer

	base       int
	baseLine   int
	baseColumn int

	cursor int
	mark   int

	frames []frame
	cache  positionCache
	fold   cases.Caser
}

// New returns a State for parsing input.
func New(input string, opts ...Option) (*State, error) {
	s := &State{
		input:      input,
		baseLine:   1,
		baseColumn: 1,
		fold:       cases.Fold(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.cursor = s.base
	s.mark = s.base
	s.frames = []frame{{offset: s.base}}
	s.cache = newPositionCache(input, source.Position{
		Offset: s.base,
		Line:   s.baseLine,
		Column: s.baseColumn,
	})
	return s, nil
}

// Input returns the text being parsed.
func (s *State) Input() string {
	return s.input
}

// Source returns the tag attached to every location.
func (s *State) Source() any {
	return s.source
}

// Cursor returns the current offset.
func (s *State) Cursor() int {
	return s.cursor
}

// SetCursor moves the current offset, typically back to a saved value when
// an alternative fails.
func (s *State) SetCursor(offset int) {
	s.cursor = offset
}

// Mark returns the start offset of the span being matched.
func (s *State) Mark() int {
	return s.mark
}

// SetMark sets the start offset used by Offset, Range, Text and Location.
func (s *State) SetMark(offset int) {
	s.mark = offset
}

// Offset returns the start offset of the span being matched.
func (s *State) Offset() int {
	return s.mark
}

// Range returns the span being matched as a pair of offsets. A mark left
// past the cursor by a rewind yields an empty span at the cursor.
func (s *State) Range() (start, end int) {
	return min(s.mark, s.cursor), s.cursor
}

// Text returns the input of the span being matched.
func (s *State) Text() string {
	start, end := s.Range()
	return s.input[start:end]
}

// Location returns the location of the span being matched.
func (s *State) Location() source.Location {
	return s.ComputeLocation(s.Range())
}

// AtEnd reports whether the cursor is at the end of input.
func (s *State) AtEnd() bool {
	return s.cursor >= len(s.input)
}

// PositionAt resolves offset to a line and column.
func (s *State) PositionAt(offset int) source.Position {
	return s.cache.position(offset)
}

// ComputeLocation returns the location spanning start to end.
func (s *State) ComputeLocation(start, end int) source.Location {
	return source.Location{
		Source: s.source,
		Start:  s.cache.position(start),
		End:    s.cache.position(end),
	}
}
