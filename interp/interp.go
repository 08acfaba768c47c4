// Package interp runs EBNF grammars directly on a peg.State.
//
// A grammar in the notation read by golang.org/x/exp/ebnf is interpreted as a
// parsing expression grammar: alternatives are ordered and the first that
// matches wins, repetitions and options are greedy, and nothing is
// memoized. Left-recursive productions are not supported.
//
// Productions whose name starts with a lower-case letter are lexical. They
// match input verbatim and report failures under their own name ("expected
// identifier"). All other productions skip white space before every token
// and production they reference.
package interp

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	peg "github.com/KimNorgaard/go-peg"
	"github.com/KimNorgaard/go-peg/errors"
	"golang.org/x/exp/ebnf"
)

const defaultMaxDepth = 1000

// Interpreter parses input with a fixed grammar. It holds no per-parse state
// and may be used by several goroutines at once.
type Interpreter struct {
	grammar  ebnf.Grammar
	start    string
	verify   bool
	maxDepth int

	classes map[*ebnf.Range]peg.CharClass
}

// New prepares g for parsing.
func New(g ebnf.Grammar, opts ...Option) (*Interpreter, error) {
	in := &Interpreter{
		grammar:  g,
		maxDepth: defaultMaxDepth,
		classes:  make(map[*ebnf.Range]peg.CharClass),
	}
	for _, opt := range opts {
		if err := opt(in); err != nil {
			return nil, err
		}
	}

	if err := in.check(); err != nil {
		return nil, err
	}

	if in.start == "" {
		start, err := in.findStart()
		if err != nil {
			return nil, err
		}
		in.start = start
	} else if g[in.start] == nil {
		return nil, fmt.Errorf("interp: %w: start production %s", ErrUndefined, in.start)
	}

	if in.verify {
		if err := ebnf.Verify(g, in.start); err != nil {
			return nil, fmt.Errorf("interp: %w", err)
		}
	}
	return in, nil
}

// Load reads a grammar from r and prepares it for parsing. The filename is
// only used in error messages.
func Load(filename string, r io.Reader, opts ...Option) (*Interpreter, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}
	return New(g, opts...)
}

// Start returns the name of the start production.
func (in *Interpreter) Start() string {
	return in.start
}

// Parse parses input with the start production, which must match all of it.
// A failed parse returns a *errors.SyntaxError.
func (in *Interpreter) Parse(input string, opts ...peg.Option) (*Node, error) {
	s, err := peg.New(input, opts...)
	if err != nil {
		return nil, err
	}

	r := &run{Interpreter: in}
	start := in.grammar[in.start]
	lexical := isLexical(in.start)
	v, err := s.Parse(func(s *peg.State) (any, bool) {
		if !lexical {
			skipSpace(s)
		}
		n, ok := r.production(s, start)
		if !ok {
			return nil, false
		}
		if !lexical {
			skipSpace(s)
		}
		return n, true
	})
	if err != nil {
		return nil, err
	}
	return v.(*Node), nil
}

// check rejects references to undefined productions and malformed ranges
// before anything is parsed.
func (in *Interpreter) check() error {
	for _, name := range slices.Sorted(maps.Keys(in.grammar)) {
		if err := in.checkExpr(in.grammar[name].Expr); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) checkExpr(x ebnf.Expression) error {
	switch x := x.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			if err := in.checkExpr(e); err != nil {
				return err
			}
		}
	case ebnf.Sequence:
		for _, e := range x {
			if err := in.checkExpr(e); err != nil {
				return err
			}
		}
	case *ebnf.Group:
		return in.checkExpr(x.Body)
	case *ebnf.Option:
		return in.checkExpr(x.Body)
	case *ebnf.Repetition:
		return in.checkExpr(x.Body)
	case *ebnf.Name:
		if in.grammar[x.String] == nil {
			return fmt.Errorf("interp: %s: %w: %s", x.Pos(), ErrUndefined, x.String)
		}
	case *ebnf.Range:
		lo, hi, ok := rangeBounds(x)
		if !ok {
			return fmt.Errorf("interp: %s: %w: %q … %q", x.Pos(), ErrBadRange, x.Begin.String, x.End.String)
		}
		in.classes[x] = peg.CharClass{Parts: []errors.ClassPart{errors.Span(lo, hi)}}
	case *ebnf.Bad:
		return fmt.Errorf("interp: %s: %s", x.Pos(), x.Error)
	}
	return nil
}

func rangeBounds(x *ebnf.Range) (lo, hi rune, ok bool) {
	lo, n := utf8.DecodeRuneInString(x.Begin.String)
	if n == 0 || n != len(x.Begin.String) {
		return 0, 0, false
	}
	hi, n = utf8.DecodeRuneInString(x.End.String)
	if n == 0 || n != len(x.End.String) {
		return 0, 0, false
	}
	return lo, hi, lo <= hi
}

// findStart returns the only production no other production references.
func (in *Interpreter) findStart() (string, error) {
	referenced := make(map[string]bool)
	for name, p := range in.grammar {
		collectNames(p.Expr, func(ref string) {
			if ref != name {
				referenced[ref] = true
			}
		})
	}

	var candidates []string
	for _, name := range slices.Sorted(maps.Keys(in.grammar)) {
		if !referenced[name] {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) != 1 {
		return "", fmt.Errorf("interp: %w: %d unreferenced productions", ErrNoStart, len(candidates))
	}
	return candidates[0], nil
}

func collectNames(x ebnf.Expression, visit func(string)) {
	switch x := x.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collectNames(e, visit)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collectNames(e, visit)
		}
	case *ebnf.Group:
		collectNames(x.Body, visit)
	case *ebnf.Option:
		collectNames(x.Body, visit)
	case *ebnf.Repetition:
		collectNames(x.Body, visit)
	case *ebnf.Name:
		visit(x.String)
	}
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}
