package peg

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/KimNorgaard/go-peg/source"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// scan resolves offset without any caching.
func scan(input string, base source.Position, offset int) source.Position {
	p := base
	for i := base.Offset; i < offset; {
		r, w := utf8.DecodeRuneInString(input[i:])
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		i += w
	}
	p.Offset = offset
	return p
}

func boundaries(input string, from int) []int {
	var offsets []int
	for i := range input[from:] {
		offsets = append(offsets, from+i)
	}
	return append(offsets, len(input))
}

func TestPositionCacheMatchesScan(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"\n\n\n",
		"ab\ncd\n\nef",
		"héllo\nwörld\n",
		"line one\r\nline two\r\n\tindented\n",
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for n, input := range inputs {
		base := source.Position{Offset: 0, Line: 1, Column: 1}
		offsets := boundaries(input, 0)

		want := make([]source.Position, len(offsets))
		for i, o := range offsets {
			want[i] = scan(input, base, o)
		}

		orders := map[string][]int{
			"ascending":  slices.Clone(offsets),
			"descending": slices.Clone(offsets),
			"shuffled":   slices.Clone(offsets),
		}
		slices.Reverse(orders["descending"])
		rng.Shuffle(len(orders["shuffled"]), func(i, j int) {
			orders["shuffled"][i], orders["shuffled"][j] = orders["shuffled"][j], orders["shuffled"][i]
		})

		for name, order := range orders {
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				c := newPositionCache(input, base)
				for _, o := range order {
					c.position(o)
				}
				// Query again after the cache is warm.
				got := make([]source.Position, len(offsets))
				for i, o := range offsets {
					got[i] = c.position(o)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("cached positions differ from scan (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestPositionCacheInsideCharacters(t *testing.T) {
	inputs := []string{
		"éa",
		"héllo\nwörld\n",
		"€€\n日本語",
		"a\xffb\xe2\x82c",
	}
	base := source.Position{Offset: 0, Line: 1, Column: 1}

	for n, input := range inputs {
		offsets := make([]int, len(input)+1)
		for i := range offsets {
			offsets[i] = i
		}

		t.Run(fmt.Sprintf("every byte/%d", n), func(t *testing.T) {
			c := newPositionCache(input, base)
			for _, o := range offsets {
				require.Equal(t, scan(input, base, o), c.position(o), "offset %d", o)
			}
			// A second pass reads back whatever the first one remembered.
			for _, o := range offsets {
				require.Equal(t, scan(input, base, o), c.position(o), "offset %d", o)
			}
		})

		t.Run(fmt.Sprintf("every byte descending/%d", n), func(t *testing.T) {
			c := newPositionCache(input, base)
			for i := len(offsets) - 1; i >= 0; i-- {
				o := offsets[i]
				require.Equal(t, scan(input, base, o), c.position(o), "offset %d", o)
			}
		})
	}

	t.Run("after a query inside a character", func(t *testing.T) {
		c := newPositionCache("éa", base)
		require.Equal(t, scan("éa", base, 1), c.position(1))
		require.Zero(t, c.slots[1].Line, "offsets inside a character are not remembered")
		require.Equal(t, source.Position{Offset: 3, Line: 1, Column: 3}, c.position(3))
	})
}

func TestPositionCacheCounting(t *testing.T) {
	c := newPositionCache("a\nb", source.Position{Offset: 0, Line: 1, Column: 1})

	tests := []struct {
		offset   int
		expected source.Position
	}{
		{0, source.Position{Offset: 0, Line: 1, Column: 1}},
		{1, source.Position{Offset: 1, Line: 1, Column: 2}},
		{2, source.Position{Offset: 2, Line: 2, Column: 1}},
		{3, source.Position{Offset: 3, Line: 2, Column: 2}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, c.position(tt.offset))
	}
}

func TestPositionCacheBaseline(t *testing.T) {
	input := "xx\nkey = 12\nnext"
	base := source.Position{Offset: 3, Line: 10, Column: 5}
	c := newPositionCache(input, base)

	for _, o := range boundaries(input, 3) {
		require.Equal(t, scan(input, base, o), c.position(o), "offset %d", o)
	}
	require.Equal(t, base, c.position(0), "offsets before the baseline resolve to it")
	require.Equal(t, c.position(len(input)), c.position(len(input)+10))
}

func TestPositionCacheMemoizes(t *testing.T) {
	c := newPositionCache("abc\ndef", source.Position{Offset: 0, Line: 1, Column: 1})
	c.position(5)
	require.Equal(t, 5, c.high)
	require.Equal(t, source.Position{Offset: 5, Line: 2, Column: 2}, c.slots[5])
	require.Zero(t, c.slots[3].Line, "offsets that were only scanned over stay unresolved")

	c.position(2)
	require.Equal(t, 5, c.high)
	require.Equal(t, source.Position{Offset: 2, Line: 1, Column: 3}, c.slots[2])
}
