package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{
			name:     "no source",
			loc:      Location{Start: Position{0, 1, 1}, End: Position{3, 1, 4}},
			expected: "1:1-1:4",
		},
		{
			name:     "with source",
			loc:      Location{Source: "query.txt", Start: Position{5, 2, 1}, End: Position{6, 2, 2}},
			expected: "query.txt:2:1-2:2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.loc.String())
		})
	}
}

func TestLocationIsEmpty(t *testing.T) {
	require.True(t, Location{Start: Position{4, 1, 5}, End: Position{4, 1, 5}}.IsEmpty())
	require.False(t, Location{Start: Position{4, 1, 5}, End: Position{5, 1, 6}}.IsEmpty())
}
