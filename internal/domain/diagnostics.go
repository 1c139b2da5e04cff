package domain

// DiagnosticSeverity is the host editor's four-level severity scale, as
// published by language servers: 1 = error through 4 = hint.
type DiagnosticSeverity int

const (
	DiagnosticError   DiagnosticSeverity = 1
	DiagnosticWarning DiagnosticSeverity = 2
	DiagnosticInfo    DiagnosticSeverity = 3
	DiagnosticHint    DiagnosticSeverity = 4
)

// DiagnosticPosition is a zero-based line/character pair.
type DiagnosticPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// DiagnosticRange spans a region in a document. Only the start matters for
// issue normalization.
type DiagnosticRange struct {
	Start DiagnosticPosition `json:"start"`
	End   DiagnosticPosition `json:"end"`
}

// Diagnostic is one entry from the host's diagnostics feed. Code is loosely
// typed on purpose: hosts publish it as a plain string, a number, or an
// object carrying a "value" field.
type Diagnostic struct {
	Severity DiagnosticSeverity `json:"severity"`
	Code     any                `json:"code,omitempty"`
	Message  string             `json:"message"`
	Range    DiagnosticRange    `json:"range"`
}

// DiagnosticSnapshot is a point-in-time view of every diagnostic the host
// currently knows, keyed by file URI (or plain path). It is immutable once
// returned by a provider.
type DiagnosticSnapshot map[string][]Diagnostic
