package interp

import "fmt"

// Option configures an Interpreter.
type Option func(*Interpreter) error

// Start returns an Option that parses with the production name instead of
// the grammar's only unreferenced production.
func Start(name string) Option {
	return func(in *Interpreter) error {
		if name == "" {
			return fmt.Errorf("interp: empty start production")
		}
		in.start = name
		return nil
	}
}

// Verify returns an Option that checks the grammar with ebnf.Verify against
// the start production: every production must be reachable from it and
// lexical productions may only reference lexical productions.
func Verify() Option {
	return func(in *Interpreter) error {
		in.verify = true
		return nil
	}
}

// MaxDepth returns an Option that limits how deeply productions may nest
// during a parse. Exceeding it fails the parse with a syntax error.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(in *Interpreter) error {
		if n <= 0 {
			return fmt.Errorf("interp: max depth must be a positive integer")
		}
		in.maxDepth = n
		return nil
	}
}
