package errors

// Expectation describes something the grammar was looking for at a point
// of the input. The set of variants is closed: every variant renders its own
// description, so a new one does not satisfy the interface until it does.
type Expectation interface {
	describe() string
}

// Literal expects the exact text.
type Literal struct {
	Text       string
	IgnoreCase bool
}

// ClassPart is a single character (Low == High) or an inclusive range of a
// character class.
type ClassPart struct {
	Low  rune
	High rune
}

// Char returns a part matching exactly r.
func Char(r rune) ClassPart {
	return ClassPart{Low: r, High: r}
}

// Span returns a part matching low through high.
func Span(low, high rune) ClassPart {
	return ClassPart{Low: low, High: high}
}

// IsRange reports whether the part covers more than one character.
func (p ClassPart) IsRange() bool {
	return p.Low != p.High
}

// Class expects one character of a bracketed set.
type Class struct {
	Parts      []ClassPart
	Inverted   bool
	IgnoreCase bool
}

// Any expects any single character.
type Any struct{}

// End expects the end of input.
type End struct{}

// Rule expects a named rule, reported by its description.
type Rule struct {
	Description string
}

// User is an expectation raised from action code.
type User struct {
	Description string
}

// Not wraps an expectation recorded inside a negative lookahead. A nil
// Expected renders as "not anything".
type Not struct {
	Expected Expectation
}

func (e Literal) describe() string { return `"` + LiteralEscape(e.Text) + `"` }
func (e Any) describe() string     { return "any character" }
func (e End) describe() string     { return "end of input" }
func (e Rule) describe() string    { return e.Description }
func (e User) describe() string    { return e.Description }

func (e Not) describe() string {
	if e.Expected == nil {
		return "not anything"
	}
	return "not " + e.Expected.describe()
}

func (e Class) describe() string {
	buf := make([]byte, 0, 2+4*len(e.Parts))
	buf = append(buf, '[')
	if e.Inverted {
		buf = append(buf, '^')
	}
	for _, part := range e.Parts {
		buf = append(buf, ClassEscape(string(part.Low))...)
		if part.IsRange() {
			buf = append(buf, '-')
			buf = append(buf, ClassEscape(string(part.High))...)
		}
	}
	buf = append(buf, ']')
	return string(buf)
}

// Negate returns e wrapped in Not, or the inner expectation when e already
// is a Not.
func Negate(e Expectation) Expectation {
	if n, ok := e.(Not); ok {
		return n.Expected
	}
	return Not{Expected: e}
}
