package errors

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// LiteralEscape escapes s for display between double quotes.
func LiteralEscape(s string) string {
	return escape(s, func(b *strings.Builder, r rune) bool {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			return false
		}
		return true
	})
}

// ClassEscape escapes s for display inside a bracketed character class.
func ClassEscape(s string) string {
	return escape(s, func(b *strings.Builder, r rune) bool {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ']':
			b.WriteString(`\]`)
		case '^':
			b.WriteString(`\^`)
		case '-':
			b.WriteString(`\-`)
		default:
			return false
		}
		return true
	})
}

func escape(s string, special func(*strings.Builder, rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if r == utf8.RuneError {
			if _, w := utf8.DecodeRuneInString(s[i:]); w == 1 {
				b.WriteString(`\x`)
				b.WriteByte(hexDigits[s[i]>>4])
				b.WriteByte(hexDigits[s[i]&0xF])
				continue
			}
		}
		if special(&b, r) {
			continue
		}
		switch {
		case r == 0:
			b.WriteString(`\0`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r <= 0x1F, r >= 0x7F && r <= 0x9F:
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[r>>4])
			b.WriteByte(hexDigits[r&0xF])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Describe renders a single expectation.
func Describe(e Expectation) string {
	return e.describe()
}

// DescribeExpected renders the alternatives in expected as one phrase:
// sorted, without duplicates, joined as "A", "A or B" or "A, B, or C".
func DescribeExpected(expected []Expectation) string {
	descriptions := make([]string, len(expected))
	for i, e := range expected {
		descriptions[i] = e.describe()
	}
	slices.Sort(descriptions)
	descriptions = slices.Compact(descriptions)

	switch n := len(descriptions); n {
	case 0:
		return ""
	case 1:
		return descriptions[0]
	case 2:
		return descriptions[0] + " or " + descriptions[1]
	default:
		return strings.Join(descriptions[:n-1], ", ") + ", or " + descriptions[n-1]
	}
}

// DescribeFound renders the text found at the failure point, or
// "end of input" when found is nil.
func DescribeFound(found *string) string {
	if found == nil {
		return "end of input"
	}
	return `"` + LiteralEscape(*found) + `"`
}

// BuildMessage returns the message of a grammar-derived syntax error.
func BuildMessage(expected []Expectation, found *string) string {
	return "Expected " + DescribeExpected(expected) + " but " + DescribeFound(found) + " found."
}
