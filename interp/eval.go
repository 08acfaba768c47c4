package interp

import (
	"fmt"

	peg "github.com/KimNorgaard/go-peg"
	"github.com/KimNorgaard/go-peg/errors"
	"golang.org/x/exp/ebnf"
)

var space = peg.CharClass{Parts: []errors.ClassPart{
	errors.Char('\t'), errors.Char('\n'), errors.Char('\r'), errors.Char(' '),
}}

func skipSpace(s *peg.State) {
	for {
		if _, ok := s.MatchClass(space); !ok {
			return
		}
	}
}

// run holds the state of one Parse call.
type run struct {
	*Interpreter
	depth int
}

// production matches p at the cursor and returns its node.
func (r *run) production(s *peg.State, p *ebnf.Production) (*Node, bool) {
	name := p.Name.String
	lexical := isLexical(name)

	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.maxDepth {
		s.ErrorAt(fmt.Sprintf("reached max recursion depth of %d", r.maxDepth), s.ComputeLocation(s.Cursor(), s.Cursor()))
	}

	v, ok := s.Rule(name, func(s *peg.State) (any, bool) {
		start := s.Cursor()
		body := func(s *peg.State) (any, bool) {
			return r.eval(s, p.Expr, lexical)
		}

		var v any
		var ok bool
		if lexical {
			v, ok = s.Named(name, body)
		} else {
			v, ok = body(s)
		}
		if !ok {
			return nil, false
		}

		s.SetMark(start)
		n := &Node{Name: name, Text: s.Text(), Location: s.Location()}
		if !lexical {
			n.Children, _ = v.([]*Node)
		}
		return n, true
	})
	if !ok {
		return nil, false
	}
	return v.(*Node), true
}

// eval matches x at the cursor and returns the nodes of the productions it
// referenced. On failure the cursor is left where it was.
func (r *run) eval(s *peg.State, x ebnf.Expression, lexical bool) ([]*Node, bool) {
	switch x := x.(type) {
	case nil:
		return nil, true

	case ebnf.Alternative:
		for _, alt := range x {
			if nodes, ok := r.eval(s, alt, lexical); ok {
				return nodes, true
			}
		}
		return nil, false

	case ebnf.Sequence:
		start := s.Cursor()
		var nodes []*Node
		for _, item := range x {
			n, ok := r.eval(s, item, lexical)
			if !ok {
				s.SetCursor(start)
				return nil, false
			}
			nodes = append(nodes, n...)
		}
		return nodes, true

	case *ebnf.Group:
		return r.eval(s, x.Body, lexical)

	case *ebnf.Option:
		if nodes, ok := r.eval(s, x.Body, lexical); ok {
			return nodes, true
		}
		return nil, true

	case *ebnf.Repetition:
		var nodes []*Node
		for {
			start := s.Cursor()
			n, ok := r.eval(s, x.Body, lexical)
			if !ok || s.Cursor() == start {
				s.SetCursor(start)
				return nodes, true
			}
			nodes = append(nodes, n...)
		}

	case *ebnf.Token:
		start := s.Cursor()
		if !lexical {
			skipSpace(s)
		}
		if _, ok := s.MatchLiteral(x.String); !ok {
			s.Expect(errors.Literal{Text: x.String})
			s.SetCursor(start)
			return nil, false
		}
		return nil, true

	case *ebnf.Range:
		start := s.Cursor()
		if !lexical {
			skipSpace(s)
		}
		class := r.classes[x]
		if _, ok := s.MatchClass(class); !ok {
			s.Expect(class.Expectation())
			s.SetCursor(start)
			return nil, false
		}
		return nil, true

	case *ebnf.Name:
		start := s.Cursor()
		if !lexical {
			skipSpace(s)
		}
		n, ok := r.production(s, r.grammar[x.String])
		if !ok {
			s.SetCursor(start)
			return nil, false
		}
		return []*Node{n}, true

	default:
		panic(fmt.Sprintf("interp: unexpected expression %T", x))
	}
}
