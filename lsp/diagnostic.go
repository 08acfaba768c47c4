// Package lsp reports syntax errors to editors over the Language Server
// Protocol.
package lsp

import (
	stderrors "errors"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/source"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostic converts err to an error diagnostic spanning its location.
// Characters are counted in runes.
func Diagnostic(err *errors.SyntaxError) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: position(err.Location.Start),
			End:   position(err.Location.End),
		},
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(Name),
		Message:  err.Message,
	}
}

// Diagnostics returns the diagnostics to publish for the result of a parse.
// A nil error clears earlier diagnostics with an empty list; errors other
// than syntax errors are reported at the start of the document.
func Diagnostics(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}
	var se *errors.SyntaxError
	if stderrors.As(err, &se) {
		return []protocol.Diagnostic{Diagnostic(se)}
	}
	return []protocol.Diagnostic{{
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   stringPtr(Name),
		Message:  err.Error(),
	}}
}

func position(p source.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(p.Line-1, 0)),
		Character: protocol.UInteger(max(p.Column-1, 0)),
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
