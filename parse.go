package peg

import (
	"slices"
	"unicode/utf8"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/source"
)

// Parse runs rule as the start rule over the whole input. It returns the
// rule's result when the rule matches and consumes all input. Otherwise it
// returns a *errors.SyntaxError describing the furthest failure, or the
// error raised from action code through Expected or Error.
func (s *State) Parse(rule Rule) (result any, err error) {
	s.reset()

	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*errors.SyntaxError)
			if !ok {
				panic(r)
			}
			s.frames = s.frames[:1]
			result, err = nil, se
		}
	}()

	v, ok := rule(s)
	s.frames = s.frames[:1]
	if ok && s.cursor == len(s.input) {
		return v, nil
	}
	if ok {
		s.Expect(errors.End{})
	}
	return nil, s.BuildError()
}

func (s *State) reset() {
	s.cursor = s.base
	s.mark = s.base
	clear(s.frames)
	s.frames = append(s.frames[:0], frame{offset: s.base})
}

// BuildError returns the syntax error for the furthest failure recorded in
// the root frame: what was expected there and the character found.
func (s *State) BuildError() *errors.SyntaxError {
	root := s.frames[0]

	var found *string
	end := root.offset
	if root.offset < len(s.input) {
		_, w := utf8.DecodeRuneInString(s.input[root.offset:])
		text := s.input[root.offset : root.offset+w]
		found = &text
		end += w
	}

	expected := slices.Clone(root.variants)
	return errors.New(
		errors.BuildMessage(expected, found),
		expected,
		found,
		s.ComputeLocation(root.offset, end),
	)
}

// Expected aborts the parse with an error saying description was expected
// instead of the text being matched. It is meant for action code that finds
// an otherwise matching span invalid.
func (s *State) Expected(description string) {
	s.ExpectedAt(description, s.Location())
}

// ExpectedAt is like Expected but reports loc.
func (s *State) ExpectedAt(description string, loc source.Location) {
	found := s.Text()
	expected := []errors.Expectation{errors.User{Description: description}}
	panic(errors.New(errors.BuildMessage(expected, &found), expected, &found, loc))
}

// Error aborts the parse with message as the error.
func (s *State) Error(message string) {
	s.ErrorAt(message, s.Location())
}

// ErrorAt is like Error but reports loc.
func (s *State) ErrorAt(message string, loc source.Location) {
	panic(errors.New(message, nil, nil, loc))
}
