package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dartlens/dartlens/internal/domain"
	"github.com/dartlens/dartlens/internal/domain/decode"
)

func TestText_IssuesWithContinuation(t *testing.T) {
	report := "error • Unused import • lib/a.dart:10:1\n" +
		"  this import is unused\n" +
		"warning • Missing return • lib/b.dart:20:3\n"

	issues := decode.Text(report, "")
	require.Len(t, issues, 2)

	assert.Equal(t, domain.SeverityError, issues[0].Severity)
	assert.Equal(t, "Unused import this import is unused", issues[0].Message)
	assert.Equal(t, "lib/a.dart", issues[0].File)
	assert.Equal(t, 10, issues[0].Line)
	assert.Equal(t, 1, issues[0].Column)
	assert.Equal(t, domain.AnalyzerCode, issues[0].Code)

	assert.Equal(t, domain.SeverityWarning, issues[1].Severity)
	assert.Equal(t, "Missing return", issues[1].Message)
	assert.Equal(t, "lib/b.dart", issues[1].File)
	assert.Equal(t, 20, issues[1].Line)
	assert.Equal(t, 3, issues[1].Column)
	assert.Equal(t, domain.AnalyzerCode, issues[1].Code)
}

func TestText_BlankLinesIgnored(t *testing.T) {
	report := "error • Broken • lib/a.dart:1:1\n" +
		"\n" +
		"  continuation after a blank\n"

	issues := decode.Text(report, "")
	require.Len(t, issues, 1)
	assert.Equal(t, "Broken continuation after a blank", issues[0].Message)
}

func TestText_PreambleBeforeFirstIssueDropped(t *testing.T) {
	report := "Analyzing myapp...\n" +
		"\n" +
		"info • Prefer const • lib/a.dart:4:9\n"

	issues := decode.Text(report, "")
	require.Len(t, issues, 1)
	assert.Equal(t, "Prefer const", issues[0].Message)
}

func TestText_TrailingIssueEmitted(t *testing.T) {
	issues := decode.Text("hint • Dead code • lib/x.dart:3:7", "")
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityHint, issues[0].Severity)
}

func TestText_PathMadeRelative(t *testing.T) {
	issues := decode.Text("error • Oops • /root/lib/a.dart:2:2\n", "/root")
	require.Len(t, issues, 1)
	assert.Equal(t, "lib/a.dart", issues[0].File)
}

func TestText_SeverityWordCaseInsensitive(t *testing.T) {
	issues := decode.Text("ERROR • Shouty • lib/a.dart:1:1\n", "")
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityError, issues[0].Severity)
}

func TestText_EmptyAndGarbageInput(t *testing.T) {
	assert.Empty(t, decode.Text("", ""))
	assert.Empty(t, decode.Text("nothing matches here\nat all\n", ""))
}

func TestText_IndentedIssueLinesStillMatch(t *testing.T) {
	issues := decode.Text("  warning • Indented • lib/a.dart:5:5\n", "")
	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Line)
}
