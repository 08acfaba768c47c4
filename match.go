package peg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-peg/errors"
)

// CharClass is a bracketed set of characters such as [a-z_].
type CharClass struct {
	Parts      []errors.ClassPart
	Inverted   bool
	IgnoreCase bool
}

// Matches reports whether r belongs to the class.
func (c CharClass) Matches(r rune) bool {
	in := c.contains(r)
	if !in && c.IgnoreCase {
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if c.contains(f) {
				in = true
				break
			}
		}
	}
	return in != c.Inverted
}

func (c CharClass) contains(r rune) bool {
	for _, p := range c.Parts {
		if r >= p.Low && r <= p.High {
			return true
		}
	}
	return false
}

// Expectation returns the class as an expectation for error reporting.
func (c CharClass) Expectation() errors.Class {
	return errors.Class{Parts: c.Parts, Inverted: c.Inverted, IgnoreCase: c.IgnoreCase}
}

// The matchers below consume input at the cursor and return the matched
// text. On failure they return false and leave the cursor where it was.
// They never record expectations.

// MatchAny matches any single character.
func (s *State) MatchAny() (string, bool) {
	_, w := s.peek()
	if w == 0 {
		return "", false
	}
	return s.advance(w), true
}

// MatchChar matches the character ch.
func (s *State) MatchChar(ch rune) (string, bool) {
	r, w := s.peek()
	if w == 0 || r != ch {
		return "", false
	}
	return s.advance(w), true
}

// MatchClass matches a single character of c.
func (s *State) MatchClass(c CharClass) (string, bool) {
	r, w := s.peek()
	if w == 0 || !c.Matches(r) {
		return "", false
	}
	return s.advance(w), true
}

// MatchLiteral matches lit exactly.
func (s *State) MatchLiteral(lit string) (string, bool) {
	if !strings.HasPrefix(s.input[s.cursor:], lit) {
		return "", false
	}
	return s.advance(len(lit)), true
}

// MatchLiteralIC matches lit under Unicode case folding. The returned text
// is the input as written, not lit.
func (s *State) MatchLiteralIC(lit string) (string, bool) {
	rest := s.input[s.cursor:]
	end := 0
	for range utf8.RuneCountInString(lit) {
		if end >= len(rest) {
			return "", false
		}
		_, w := utf8.DecodeRuneInString(rest[end:])
		end += w
	}
	if s.fold.String(rest[:end]) != s.fold.String(lit) {
		return "", false
	}
	return s.advance(end), true
}

func (s *State) peek() (rune, int) {
	if s.cursor >= len(s.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.input[s.cursor:])
}

func (s *State) advance(n int) string {
	text := s.input[s.cursor : s.cursor+n]
	s.cursor += n
	return text
}
