package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/dartlens/dartlens/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
	hint    = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	hintTagStyle  = lipgloss.NewStyle().Foreground(hint)
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderResult formats one analysis run for the terminal: a summary header
// followed by per-file groups ordered the way the pipeline sorted them.
func RenderResult(result *domain.Result) string {
	var b strings.Builder

	if result.Status != "" {
		b.WriteString("  " + dimStyle.Render(result.Status) + "\n")
		return b.String()
	}

	b.WriteString("  " + headerStyle.Render("dartlens"))
	b.WriteString("  " + dimStyle.Render(string(result.Strategy)))
	b.WriteString("\n\n")

	renderSummary(&b, result.Summary)

	if len(result.Groups) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	for _, group := range result.Groups {
		renderGroup(&b, group)
	}

	return b.String()
}

func renderSummary(b *strings.Builder, sum domain.Summary) {
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if sum.Errors > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", sum.Errors)))
		b.WriteString("  ")
	}
	if sum.Warnings > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", sum.Warnings)))
		b.WriteString("  ")
	}
	if sum.InfoAndHints > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", sum.InfoAndHints)))
	}
	b.WriteString("\n\n")
}

func renderGroup(b *strings.Builder, group domain.IssueGroup) {
	file := group.File
	if file == "" {
		file = "(no file)"
	}
	b.WriteString("  " + fileStyle.Render(file) + "\n")

	for _, issue := range group.Issues {
		pos := dimStyle.Render(fmt.Sprintf("%4d:%-3d", issue.Line, issue.Column))
		tag := severityTag(issue.Severity)
		line := fmt.Sprintf("  %s %s %s", pos, tag, issue.Message)
		if code := HumanizeCode(issue.Code); code != "" {
			line += "  " + faintStyle.Render(code)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	case domain.SeverityInfo:
		return infoTagStyle.Render("info ")
	default:
		return hintTagStyle.Render("hint ")
	}
}

// HumanizeCode turns an analyzer rule code into readable words:
// "unused_import" and "missingReturn" both become "unused import" and
// "missing return". Placeholder codes render as nothing.
func HumanizeCode(code string) string {
	if code == "" || code == domain.UnknownCode || code == domain.AnalyzerCode {
		return ""
	}
	var words []string
	for _, part := range strings.Split(code, "_") {
		for _, word := range camelcase.Split(part) {
			words = append(words, strings.ToLower(word))
		}
	}
	return strings.Join(words, " ")
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		counts := fmt.Sprintf("%s %s %s",
			failStyle.Render(fmt.Sprintf("%dE", e.Errors)),
			warnTagStyle.Render(fmt.Sprintf("%dW", e.Warnings)),
			infoTagStyle.Render(fmt.Sprintf("%dI", e.InfoAndHints)),
		)

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			counts,
			dimStyle.Render(e.Strategy),
		)

		total := e.Errors + e.Warnings + e.InfoAndHints
		if i > 0 {
			prev := entries[i-1]
			diff := total - (prev.Errors + prev.Warnings + prev.InfoAndHints)
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
