// Package errors builds and renders the syntax errors reported by parsers
// running on the peg runtime.
package errors

import (
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-peg/source"
)

// SyntaxError is the terminal error of a failed parse.
//
// Expected and Found are both nil when the error was raised with a plain
// message from action code. Found is also nil when the parser stopped at the
// end of input.
type SyntaxError struct {
	Message  string
	Expected []Expectation
	Found    *string
	Location source.Location
}

// New returns a SyntaxError with the given fields.
func New(message string, expected []Expectation, found *string, loc source.Location) *SyntaxError {
	return &SyntaxError{
		Message:  message,
		Expected: expected,
		Found:    found,
		Location: loc,
	}
}

// Error returns the message unchanged.
func (e *SyntaxError) Error() string {
	return e.Message
}

// Format renders the error together with the offending line of input and a
// caret underline of the error span:
//
//	Error: Expected "c" but "b" found.
//	 --> query.txt:1:2
//	  |
//	1 | ab
//	  |  ^
func (e *SyntaxError) Format(input string) string {
	start := clamp(e.Location.Start.Offset, len(input))
	end := clamp(e.Location.End.Offset, len(input))

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}
	if end > lineEnd || end < start {
		end = lineEnd
	}

	lineNo := strconv.Itoa(e.Location.Start.Line)
	gutter := strings.Repeat(" ", len(lineNo))

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.Message)
	b.WriteString("\n")
	b.WriteString(gutter)
	b.WriteString("--> ")
	if e.Location.Source != nil {
		b.WriteString(sourceName(e.Location.Source))
		b.WriteString(":")
	}
	b.WriteString(e.Location.Start.String())
	b.WriteString("\n")
	b.WriteString(gutter + " |\n")
	b.WriteString(lineNo + " | ")
	b.WriteString(strings.TrimSuffix(input[lineStart:lineEnd], "\r"))
	b.WriteString("\n")
	b.WriteString(gutter + " | ")
	for _, r := range input[lineStart:start] {
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	width := len([]rune(input[start:end]))
	if width == 0 {
		width = 1
	}
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}

func sourceName(src any) string {
	switch s := src.(type) {
	case string:
		return s
	case interface{ String() string }:
		return s.String()
	default:
		return "<input>"
	}
}

func clamp(offset, limit int) int {
	if offset < 0 {
		return 0
	}
	if offset > limit {
		return limit
	}
	return offset
}
