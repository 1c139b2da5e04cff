package domain

import "time"

// Strategy names which decoding path produced a run's issues.
type Strategy string

const (
	StrategyJSON     Strategy = "json-output"
	StrategyText     Strategy = "text-report"
	StrategySnapshot Strategy = "diagnostics-snapshot"
)

// Result is the outcome of one analysis run: the normalized issue
// collection together with its derived projections. A new Result replaces
// the session's previous one wholesale.
type Result struct {
	Root       string       `json:"root"`
	Strategy   Strategy     `json:"strategy"`
	Status     string       `json:"status,omitempty"`
	Issues     []Issue      `json:"issues"`
	Groups     []IssueGroup `json:"groups"`
	Summary    Summary      `json:"summary"`
	Timestamp  time.Time    `json:"timestamp"`
	CommitHash string       `json:"commit_hash,omitempty"`
}

// NewResult derives the grouped view and summary for a run's issues.
func NewResult(root string, strategy Strategy, issues []Issue) *Result {
	return &Result{
		Root:      root,
		Strategy:  strategy,
		Issues:    issues,
		Groups:    GroupAndSort(issues),
		Summary:   Summarize(issues),
		Timestamp: time.Now(),
	}
}
