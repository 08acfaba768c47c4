/*
Package peg is the runtime that generated recursive-descent (PEG) parsers
run against. A State tracks the cursor over the input, resolves offsets to
lines and columns on demand, collects what the grammar expected at the
furthest point any alternative reached, and turns that into a syntax error
when the parse fails.

Generated code drives a State with three kinds of calls:

 1. Primitive matchers (MatchLiteral, MatchClass, MatchAny, ...) consume
    input at the cursor. They report failure with a false result and leave
    the cursor untouched, so the caller can try the next alternative.

 2. Expect records what was looked for when a matcher fails. Only
    expectations at the furthest offset reached survive; shallower failures
    are dropped because a later alternative got further.

 3. Rule, Named, Not, And and Scope wrap a rule invocation in its own
    expectation frame and close it on every exit path. Begin and End are the
    underlying push and pop for code that manages frames itself.

A start rule is run with Parse:

	digit := peg.CharClass{Parts: []errors.ClassPart{errors.Span('0', '9')}}

	number := func(s *peg.State) (any, bool) {
		return s.Rule("number", func(s *peg.State) (any, bool) {
			start := s.Cursor()
			for {
				if _, ok := s.MatchClass(digit); !ok {
					s.Expect(digit.Expectation())
					break
				}
			}
			if s.Cursor() == start {
				return nil, false
			}
			s.SetMark(start)
			n, _ := strconv.Atoi(s.Text())
			return n, true
		})
	}

	v, err := peg.Parse("12x", number)
	// err: Expected [0-9] or end of input but "x" found.

Action code can abort the whole parse with Expected or Error; Parse
recovers those and returns them as its error. Every error Parse returns
for a failed match is a *errors.SyntaxError.
*/
package peg
