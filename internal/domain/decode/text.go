package decode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dartlens/dartlens/internal/domain"
)

// issueStart matches the first line of one finding in the analyzer's plain
// report: a severity word, a separator glyph, the message, another
// separator, then path:line:column. The analyzer wraps long messages onto
// indented follow-up lines, which this pattern deliberately does not match.
var issueStart = regexp.MustCompile(`(?i)^\s*(error|warning|info|hint)\s*[•·|]\s*(.*?)\s*[•·|]\s*(\S+?):(\d+):(\d+)\s*$`)

// Text extracts issues from the analyzer's line-oriented report. Lines
// matching the issue-start pattern open a new issue; any other non-blank
// line continues the message of the issue being accumulated, joined by a
// single space. Blank lines neither start nor continue. Malformed lines are
// never an error, they are simply skipped.
//
// The text format carries no machine-readable code, so every issue gets the
// generic analyzer code.
func Text(report, root string) []domain.Issue {
	var issues []domain.Issue
	var current *domain.Issue

	for _, line := range strings.Split(report, "\n") {
		if m := issueStart.FindStringSubmatch(line); m != nil {
			if current != nil {
				issues = append(issues, *current)
			}
			lineNo, _ := strconv.Atoi(m[4])
			column, _ := strconv.Atoi(m[5])
			if lineNo < 1 {
				lineNo = 1
			}
			if column < 1 {
				column = 1
			}
			current = &domain.Issue{
				Severity: domain.MapSeverity(m[1]),
				Code:     domain.AnalyzerCode,
				Message:  m[2],
				File:     domain.RelativeTo(m[3], root),
				Line:     lineNo,
				Column:   column,
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if current != nil {
			if current.Message == "" {
				current.Message = trimmed
			} else {
				current.Message += " " + trimmed
			}
		}
	}

	if current != nil {
		issues = append(issues, *current)
	}
	return issues
}
