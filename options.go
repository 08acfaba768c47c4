package peg

import (
	"fmt"

	"github.com/KimNorgaard/go-peg/trace"
)

// Option configures a State at construction.
type Option func(*State) error

// WithSource returns an Option that tags every location produced by the
// State with src, typically a file name.
func WithSource(src any) Option {
	return func(s *State) error {
		s.source = src
		return nil
	}
}

// WithBaseline returns an Option that starts parsing at offset, reporting
// that point of the input as line and column. It lets a sub-document embedded
// in a larger file report positions relative to the enclosing file.
//
// The offset must lie within the input; line and column must be positive.
func WithBaseline(offset, line, column int) Option {
	return func(s *State) error {
		if offset < 0 || offset > len(s.input) {
			return fmt.Errorf("peg: baseline offset %d outside input of length %d", offset, len(s.input))
		}
		if line < 1 || column < 1 {
			return fmt.Errorf("peg: baseline line and column must be positive, got %d:%d", line, column)
		}
		s.base = offset
		s.baseLine = line
		s.baseColumn = column
		return nil
	}
}

// WithTracer returns an Option that reports rule events run through
// State.Rule to t.
func WithTracer(t trace.Tracer) Option {
	return func(s *State) error {
		if t == nil {
			return ErrNilTracer
		}
		s.tracer = t
		return nil
	}
}
