package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/source"
	"github.com/stretchr/testify/require"
)

func TestSyntaxErrorError(t *testing.T) {
	err := errors.New("boom", nil, nil, source.Location{})
	require.EqualError(t, err, "boom")

	var target *errors.SyntaxError
	wrapped := fmt.Errorf("loading config: %w", err)
	require.True(t, stderrors.As(wrapped, &target))
	require.Nil(t, target.Expected)
	require.Nil(t, target.Found)
}

func TestSyntaxErrorFormat(t *testing.T) {
	found := "b"
	tests := []struct {
		name     string
		input    string
		err      *errors.SyntaxError
		expected string
	}{
		{
			name:  "single character",
			input: "ab",
			err: errors.New(`Expected "c" but "b" found.`, nil, &found, source.Location{
				Source: "query.txt",
				Start:  source.Position{Offset: 1, Line: 1, Column: 2},
				End:    source.Position{Offset: 2, Line: 1, Column: 3},
			}),
			expected: "Error: Expected \"c\" but \"b\" found.\n" +
				" --> query.txt:1:2\n" +
				"  |\n" +
				"1 | ab\n" +
				"  |  ^",
		},
		{
			name:  "end of input on second line",
			input: "a\nbc",
			err: errors.New(`Expected "d" but end of input found.`, nil, nil, source.Location{
				Start: source.Position{Offset: 4, Line: 2, Column: 3},
				End:   source.Position{Offset: 4, Line: 2, Column: 3},
			}),
			expected: "Error: Expected \"d\" but end of input found.\n" +
				" --> 2:3\n" +
				"  |\n" +
				"2 | bc\n" +
				"  |   ^",
		},
		{
			name:  "span clipped to first line",
			input: "\tkey = value\nnext",
			err: errors.New("bad entry", nil, nil, source.Location{
				Start: source.Position{Offset: 1, Line: 1, Column: 2},
				End:   source.Position{Offset: 17, Line: 2, Column: 5},
			}),
			expected: "Error: bad entry\n" +
				" --> 1:2\n" +
				"  |\n" +
				"1 | \tkey = value\n" +
				"  | \t^^^^^^^^^^^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.err.Format(tt.input))
		})
	}
}
