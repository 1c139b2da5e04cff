package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dartlens/dartlens/internal/domain"
)

func TestMapSeverity_KnownLabels(t *testing.T) {
	tests := []struct {
		label string
		want  domain.Severity
	}{
		{"error", domain.SeverityError},
		{"fatal", domain.SeverityError},
		{"warning", domain.SeverityWarning},
		{"warn", domain.SeverityWarning},
		{"info", domain.SeverityInfo},
		{"information", domain.SeverityInfo},
		{"hint", domain.SeverityHint},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.MapSeverity(tt.label), "label %q", tt.label)
	}
}

func TestMapSeverity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.SeverityError, domain.MapSeverity("ERROR"))
	assert.Equal(t, domain.SeverityError, domain.MapSeverity("Fatal"))
	assert.Equal(t, domain.SeverityWarning, domain.MapSeverity("WARN"))
	assert.Equal(t, domain.SeverityInfo, domain.MapSeverity("Information"))
}

func TestMapSeverity_UnknownMapsToHint(t *testing.T) {
	for _, label := range []string{"xyz", "", "severe", "critical", "ERROR "} {
		assert.Equal(t, domain.SeverityHint, domain.MapSeverity(label), "label %q", label)
	}
}

func TestMapSeverity_AlwaysInClosedSet(t *testing.T) {
	for _, label := range []string{"error", "Warning", "bogus", "", "42"} {
		got := domain.MapSeverity(label)
		assert.Contains(t, domain.ValidSeverities, got)
	}
}

func TestSeverity_RankOrdering(t *testing.T) {
	assert.Less(t, domain.SeverityError.Rank(), domain.SeverityWarning.Rank())
	assert.Less(t, domain.SeverityWarning.Rank(), domain.SeverityInfo.Rank())
	assert.Less(t, domain.SeverityInfo.Rank(), domain.SeverityHint.Rank())
}

func TestSummarize(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityInfo},
		{Severity: domain.SeverityHint},
	}

	sum := domain.Summarize(issues)
	assert.Equal(t, 2, sum.Errors)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, 2, sum.InfoAndHints, "info and hints share a bucket")
	assert.Equal(t, 5, sum.Total())
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.Summary{}, domain.Summarize(nil))
}

func TestFilterMinSeverity(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityError, Code: "e"},
		{Severity: domain.SeverityWarning, Code: "w"},
		{Severity: domain.SeverityInfo, Code: "i"},
		{Severity: domain.SeverityHint, Code: "h"},
	}

	kept := domain.FilterMinSeverity(issues, domain.SeverityWarning)
	assert.Len(t, kept, 2)
	assert.Equal(t, "e", kept[0].Code)
	assert.Equal(t, "w", kept[1].Code)

	assert.Len(t, domain.FilterMinSeverity(issues, ""), 4, "empty min keeps everything")
	assert.Len(t, domain.FilterMinSeverity(issues, domain.SeverityHint), 4)
}
