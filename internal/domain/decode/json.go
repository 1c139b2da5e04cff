// Package decode converts the analyzer's raw output shapes into normalized
// issues. Each decoder is pure: it never fails on content, only produces
// fewer issues. Strategy selection lives in the application layer.
package decode

import (
	"fmt"

	"github.com/dartlens/dartlens/internal/domain"
)

// JSON extracts issues from an already-parsed JSON payload. The analyzer's
// JSON output has no fixed schema, so three shapes are recognized, checked
// in order: a single issue object, an array of issue objects, and a wrapper
// object holding a "diagnostics" array.
//
// The boolean reports whether the payload matched any recognized shape. A
// valid-but-unrecognized payload yields (nil, false): zero issues at this
// layer, letting the caller decide whether that warrants another strategy.
func JSON(payload any, root string) ([]domain.Issue, bool) {
	switch v := payload.(type) {
	case map[string]any:
		if looksLikeIssue(v) {
			return []domain.Issue{decodeIssueObject(v, root)}, true
		}
		if wrapped, ok := v["diagnostics"].([]any); ok {
			return decodeIssueList(wrapped, root), true
		}
		return nil, false
	case []any:
		return decodeIssueList(v, root), true
	default:
		return nil, false
	}
}

// looksLikeIssue reports whether a top-level object carries both a
// severity-like and a code-like field.
func looksLikeIssue(m map[string]any) bool {
	_, hasSeverity := firstString(m, "severity", "level")
	_, hasCode := firstString(m, "code", "errorCode")
	return hasSeverity && hasCode
}

func decodeIssueList(items []any, root string) []domain.Issue {
	issues := make([]domain.Issue, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		issues = append(issues, decodeIssueObject(m, root))
	}
	return issues
}

// decodeIssueObject reads one issue from a permissively-typed object.
// Location lives either in a nested "location" object (startLine,
// startColumn, file) or at the top level (line, column, file); missing
// positions default to 1.
func decodeIssueObject(m map[string]any, root string) domain.Issue {
	severity, _ := firstString(m, "severity", "level")
	message, _ := firstString(m, "message", "problemMessage")

	code, ok := firstString(m, "code", "errorCode")
	if !ok || code == "" {
		code = domain.UnknownCode
	}

	file := ""
	line, column := 1, 1
	if loc, ok := m["location"].(map[string]any); ok {
		file, _ = firstString(loc, "file")
		line = positiveInt(loc, "startLine")
		column = positiveInt(loc, "startColumn")
	} else {
		file, _ = firstString(m, "file")
		line = positiveInt(m, "line")
		column = positiveInt(m, "column")
	}

	return domain.Issue{
		Severity: domain.MapSeverity(severity),
		Code:     code,
		Message:  message,
		File:     domain.RelativeTo(file, root),
		Line:     line,
		Column:   column,
	}
}

// firstString returns the first of the named fields holding a string-able
// value. Numbers are stringified since tools disagree about code types.
func firstString(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			return v, true
		case float64:
			return trimFloat(v), true
		}
	}
	return "", false
}

// positiveInt reads a field as an int, defaulting to 1 when the field is
// absent, non-numeric, or below 1.
func positiveInt(m map[string]any, key string) int {
	if v, ok := m[key].(float64); ok && int(v) >= 1 {
		return int(v)
	}
	return 1
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
