package peg

// Parse parses input with rule as the start rule. It is shorthand for New
// followed by State.Parse.
func Parse(input string, rule Rule, opts ...Option) (any, error) {
	s, err := New(input, opts...)
	if err != nil {
		return nil, err
	}
	return s.Parse(rule)
}
