package decode

import (
	"fmt"
	"strings"

	"github.com/dartlens/dartlens/internal/domain"
)

const dartExt = ".dart"

// Snapshot extracts issues from the host's current diagnostics feed.
// Entries whose key is not a plain file reference, or whose path is not a
// Dart source file, are skipped. The host's zero-based range start becomes
// the issue's 1-based line and column.
func Snapshot(snap domain.DiagnosticSnapshot, root string) []domain.Issue {
	var issues []domain.Issue
	for uri, diags := range snap {
		path, ok := filePath(uri)
		if !ok || !strings.HasSuffix(path, dartExt) {
			continue
		}
		path = domain.RelativeTo(path, root)
		for _, d := range diags {
			issues = append(issues, domain.Issue{
				Severity: diagnosticSeverity(d.Severity),
				Code:     diagnosticCode(d.Code),
				Message:  d.Message,
				File:     path,
				Line:     d.Range.Start.Line + 1,
				Column:   d.Range.Start.Character + 1,
			})
		}
	}
	return issues
}

// filePath strips a file:// scheme, accepts bare paths, and rejects every
// other URI scheme.
func filePath(uri string) (string, bool) {
	if rest, ok := strings.CutPrefix(uri, "file://"); ok {
		return rest, true
	}
	if strings.Contains(uri, "://") {
		return "", false
	}
	return uri, true
}

// diagnosticSeverity maps the host's four-level scale onto issue severities.
// Unrecognized levels land on info rather than hint: the host did publish
// the diagnostic, so it is at least informational.
func diagnosticSeverity(s domain.DiagnosticSeverity) domain.Severity {
	switch s {
	case domain.DiagnosticError:
		return domain.SeverityError
	case domain.DiagnosticWarning:
		return domain.SeverityWarning
	case domain.DiagnosticHint:
		return domain.SeverityHint
	default:
		return domain.SeverityInfo
	}
}

// diagnosticCode stringifies the host's loosely-typed code field: a plain
// string, a number, or an object carrying a "value".
func diagnosticCode(code any) string {
	switch v := code.(type) {
	case nil:
		return domain.UnknownCode
	case string:
		if v == "" {
			return domain.UnknownCode
		}
		return v
	case float64:
		return trimFloat(v)
	case int:
		return fmt.Sprintf("%d", v)
	case map[string]any:
		if value, ok := v["value"]; ok {
			return diagnosticCode(value)
		}
		return domain.UnknownCode
	default:
		return fmt.Sprintf("%v", v)
	}
}
