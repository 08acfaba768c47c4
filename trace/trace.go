// Package trace defines the events a parser emits while running rules and
// two tracers that render them.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-peg/source"
	"github.com/tliron/commonlog"
)

// EventType identifies a step in the life of a rule invocation.
type EventType string

const (
	RuleEnter EventType = "rule.enter"
	RuleMatch EventType = "rule.match"
	RuleFail  EventType = "rule.fail"
)

// Event is reported to a Tracer for every rule invocation step.
type Event struct {
	Type     EventType
	Rule     string
	Location source.Location
}

// Tracer receives rule events in the order they happen.
type Tracer interface {
	Trace(Event)
}

// indenter tracks rule nesting and renders one line per event.
type indenter struct {
	depth int
}

// line panics on an unknown event type; emitters only produce the three
// rule events.
func (in *indenter) line(e Event) string {
	switch e.Type {
	case RuleEnter:
		s := in.format(e)
		in.depth++
		return s
	case RuleMatch, RuleFail:
		in.depth--
		return in.format(e)
	default:
		panic(fmt.Sprintf("trace: invalid event type %q", e.Type))
	}
}

func (in *indenter) format(e Event) string {
	start, end := e.Location.Start, e.Location.End
	return fmt.Sprintf("%d:%d-%d:%d %-10s %s%s",
		start.Line, start.Column, end.Line, end.Column,
		e.Type, strings.Repeat("  ", max(in.depth, 0)), e.Rule)
}

// Printer writes one line per event to an io.Writer, indenting rules by
// nesting depth.
type Printer struct {
	w io.Writer
	indenter
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Trace implements Tracer.
func (p *Printer) Trace(e Event) {
	fmt.Fprintln(p.w, p.line(e))
}

// Logger renders events like Printer and sends them to a commonlog logger
// at debug level.
type Logger struct {
	log commonlog.Logger
	indenter
}

// NewLogger returns a Logger writing to log.
func NewLogger(log commonlog.Logger) *Logger {
	return &Logger{log: log}
}

// Trace implements Tracer.
func (l *Logger) Trace(e Event) {
	l.log.Debugf("%s", l.line(e))
}
