package parser

import "fmt"

// DiagKind categorizes a non-fatal parse problem.
type DiagKind string

const (
	// DiagStructural marks a row too short or malformed to interpret.
	DiagStructural DiagKind = "structural-error"
	// DiagAmbiguousField marks a field that normalized to an unknown
	// sentinel because the source text could not be resolved.
	DiagAmbiguousField DiagKind = "ambiguous-field"
	// DiagContextUnderflow marks a continuation row seen before any
	// section row; it is dropped rather than attached to the wrong section.
	DiagContextUnderflow DiagKind = "context-underflow"
)

// Diagnostic reports one skipped or degraded row. Row is the zero-based
// index into the input row sequence.
type Diagnostic struct {
	Row     int      `json:"row"`
	Kind    DiagKind `json:"kind"`
	Message string   `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("row %d: %s: %s", d.Row, d.Kind, d.Message)
}
