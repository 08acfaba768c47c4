package peg

import "errors"

// ErrNilTracer is returned by New when WithTracer is given a nil tracer.
var ErrNilTracer = errors.New("peg: nil tracer")
