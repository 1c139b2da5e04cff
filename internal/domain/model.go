package domain

import "strings"

// Severity classifies an analyzer finding. The set is closed: every issue
// carries exactly one of the four values below.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityHint    Severity = "hint"
)

// ValidSeverities enumerates all recognized severities, most urgent first.
var ValidSeverities = []Severity{
	SeverityError, SeverityWarning, SeverityInfo, SeverityHint,
}

// Rank orders severities for summaries and filtering: lower is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// MapSeverity normalizes a raw severity label from any analyzer source into
// the closed Severity set. The mapping is case-insensitive and total:
// unrecognized labels degrade to SeverityHint, never to an error.
func MapSeverity(label string) Severity {
	switch strings.ToLower(label) {
	case "error", "fatal":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "info", "information":
		return SeverityInfo
	default:
		return SeverityHint
	}
}

// UnknownCode marks issues whose source carried no machine-readable code.
const UnknownCode = "unknown"

// AnalyzerCode marks issues decoded from the analyzer's plain-text report,
// which carries no code field at all.
const AnalyzerCode = "analyzer"

// Issue is one normalized analyzer finding. Issues are immutable values:
// decoders create them fresh on every run and the previous collection is
// replaced wholesale, so there is no identity beyond structural equality.
// Line and Column are 1-based and never below 1.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
}

// Summary holds the per-run severity counts shown to the user.
type Summary struct {
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	InfoAndHints int `json:"info_and_hints"`
}

// Total returns the number of issues counted in the summary.
func (s Summary) Total() int {
	return s.Errors + s.Warnings + s.InfoAndHints
}

// Summarize counts issues by severity.
func Summarize(issues []Issue) Summary {
	var sum Summary
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			sum.Errors++
		case SeverityWarning:
			sum.Warnings++
		default:
			sum.InfoAndHints++
		}
	}
	return sum
}

// FilterMinSeverity drops issues less urgent than min. An empty min keeps
// everything.
func FilterMinSeverity(issues []Issue, min Severity) []Issue {
	if min == "" {
		return issues
	}
	var kept []Issue
	for _, issue := range issues {
		if issue.Severity.Rank() <= min.Rank() {
			kept = append(kept, issue)
		}
	}
	return kept
}
