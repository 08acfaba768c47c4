package peg

import (
	"slices"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/trace"
)

// Begin opens an expectation frame at the cursor. Every Begin must be paired
// with an End; Scope and the helpers built on it do the pairing.
func (s *State) Begin() {
	s.frames = append(s.frames, frame{offset: s.cursor})
}

// End closes the innermost frame and merges what it recorded into its
// parent. Expectations behind the parent's furthest offset are dropped,
// ones at the same offset are added to the parent's, and ones further in
// replace them. With invert set each merged expectation is negated, which
// unwraps expectations that are already negated.
func (s *State) End(invert bool) {
	n := len(s.frames)
	if n < 2 {
		panic("peg: End without matching Begin")
	}
	child := s.frames[n-1]
	s.frames[n-1] = frame{}
	s.frames = s.frames[:n-1]

	if len(child.variants) == 0 {
		return
	}
	parent := &s.frames[n-2]
	switch {
	case child.offset < parent.offset:
		return
	case child.offset > parent.offset:
		parent.offset = child.offset
		parent.variants = parent.variants[:0]
	}
	for _, v := range child.variants {
		if invert {
			v = errors.Negate(v)
		}
		parent.variants = append(parent.variants, v)
	}
}

// Expect records that e was expected at the cursor. Expectations behind the
// innermost frame's furthest offset are ignored; one further in starts a new
// set of alternatives.
func (s *State) Expect(e errors.Expectation) {
	top := &s.frames[len(s.frames)-1]
	switch {
	case s.cursor < top.offset:
		return
	case s.cursor > top.offset:
		top.offset = s.cursor
		top.variants = top.variants[:0]
	}
	top.variants = append(top.variants, e)
}

// Expectations returns the furthest offset recorded by the innermost frame
// and the expectations registered there.
func (s *State) Expectations() (offset int, expected []errors.Expectation) {
	top := s.frames[len(s.frames)-1]
	return top.offset, slices.Clone(top.variants)
}

// Depth returns the number of open frames, including the root frame.
func (s *State) Depth() int {
	return len(s.frames)
}

// Scope runs rule inside its own expectation frame, closing it with
// End(invert) on every exit path.
func (s *State) Scope(invert bool, rule Rule) (any, bool) {
	s.Begin()
	defer s.End(invert)
	return rule(s)
}

// Rule runs rule as the named grammar rule: inside its own frame, reporting
// enter, match and fail events to the tracer, and rewinding the cursor when
// it fails.
func (s *State) Rule(name string, rule Rule) (any, bool) {
	start := s.cursor
	s.emit(trace.RuleEnter, name, start, start)

	v, ok := s.Scope(false, rule)
	if !ok {
		s.cursor = start
		s.emit(trace.RuleFail, name, start, start)
		return nil, false
	}
	s.emit(trace.RuleMatch, name, start, s.cursor)
	return v, true
}

// Named runs rule with its own expectations silenced. When it fails the
// single expectation description is recorded at its start instead.
func (s *State) Named(description string, rule Rule) (v any, ok bool) {
	start := s.cursor
	func() {
		s.Begin()
		defer s.drop()
		v, ok = rule(s)
	}()
	if !ok {
		s.cursor = start
		s.Expect(errors.Rule{Description: description})
		return nil, false
	}
	return v, true
}

// Not is a negative lookahead: it succeeds without consuming input when rule
// fails. Expectations recorded by rule are reported negated.
func (s *State) Not(rule Rule) (any, bool) {
	start := s.cursor
	_, ok := s.Scope(true, rule)
	s.cursor = start
	return nil, !ok
}

// And is a positive lookahead: it succeeds without consuming input when rule
// matches.
func (s *State) And(rule Rule) (any, bool) {
	start := s.cursor
	_, ok := s.Scope(false, rule)
	s.cursor = start
	return nil, ok
}

func (s *State) drop() {
	n := len(s.frames)
	s.frames[n-1] = frame{}
	s.frames = s.frames[:n-1]
}

func (s *State) emit(typ trace.EventType, rule string, start, end int) {
	if s.tracer == nil {
		return
	}
	s.tracer.Trace(trace.Event{
		Type:     typ,
		Rule:     rule,
		Location: s.ComputeLocation(start, end),
	})
}
