package decode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dartlens/dartlens/internal/domain"
	"github.com/dartlens/dartlens/internal/domain/decode"
)

// parse is a helper mirroring how the pipeline hands payloads to the decoder.
func parse(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestJSON_SingleIssueObject(t *testing.T) {
	payload := parse(t, `{
		"severity": "error",
		"code": "E1",
		"message": "m",
		"location": {"file": "/root/a.dart", "startLine": 3, "startColumn": 5}
	}`)

	issues, ok := decode.JSON(payload, "/root")
	assert.True(t, ok)
	require.Len(t, issues, 1)

	assert.Equal(t, domain.Issue{
		Severity: domain.SeverityError,
		Code:     "E1",
		Message:  "m",
		File:     "a.dart",
		Line:     3,
		Column:   5,
	}, issues[0])
}

func TestJSON_ArrayOfIssues(t *testing.T) {
	payload := parse(t, `[
		{"severity": "warning", "code": "W1", "message": "first", "file": "/root/lib/a.dart", "line": 10, "column": 2},
		{"level": "info", "errorCode": "I1", "problemMessage": "second"}
	]`)

	issues, ok := decode.JSON(payload, "/root")
	assert.True(t, ok)
	require.Len(t, issues, 2)

	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "lib/a.dart", issues[0].File)
	assert.Equal(t, 10, issues[0].Line)

	// Alternate field names and missing location.
	assert.Equal(t, domain.SeverityInfo, issues[1].Severity)
	assert.Equal(t, "I1", issues[1].Code)
	assert.Equal(t, "second", issues[1].Message)
	assert.Equal(t, 1, issues[1].Line)
	assert.Equal(t, 1, issues[1].Column)
}

func TestJSON_WrappedDiagnostics(t *testing.T) {
	payload := parse(t, `{
		"version": 1,
		"diagnostics": [
			{"severity": "error", "code": "unused_import", "message": "Unused import",
			 "location": {"file": "/root/lib/a.dart", "startLine": 7, "startColumn": 1}}
		]
	}`)

	issues, ok := decode.JSON(payload, "/root")
	assert.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "unused_import", issues[0].Code)
	assert.Equal(t, "lib/a.dart", issues[0].File)
	assert.Equal(t, 7, issues[0].Line)
}

func TestJSON_EmptyArrayYieldsNoIssues(t *testing.T) {
	issues, ok := decode.JSON(parse(t, `[]`), "/root")
	assert.True(t, ok, "an empty array is still a recognized shape")
	assert.Empty(t, issues)
}

func TestJSON_UnrecognizedShape(t *testing.T) {
	issues, ok := decode.JSON(parse(t, `{"unrelatedField": 1}`), "/root")
	assert.False(t, ok)
	assert.Empty(t, issues)

	issues, ok = decode.JSON(parse(t, `"just a string"`), "/root")
	assert.False(t, ok)
	assert.Empty(t, issues)

	issues, ok = decode.JSON(parse(t, `42`), "/root")
	assert.False(t, ok)
	assert.Empty(t, issues)
}

func TestJSON_MissingCodeDefaultsToUnknown(t *testing.T) {
	payload := parse(t, `{"diagnostics": [{"severity": "warning", "message": "no code here"}]}`)

	issues, ok := decode.JSON(payload, "")
	assert.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.UnknownCode, issues[0].Code)
}

func TestJSON_NumericCodeIsStringified(t *testing.T) {
	payload := parse(t, `[{"severity": "error", "code": 42, "message": "m"}]`)

	issues, ok := decode.JSON(payload, "")
	assert.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "42", issues[0].Code)
}

func TestJSON_LineAndColumnNeverBelowOne(t *testing.T) {
	payload := parse(t, `[
		{"severity": "error", "code": "E", "line": 0, "column": -3},
		{"severity": "error", "code": "E", "location": {"startLine": 0}}
	]`)

	issues, ok := decode.JSON(payload, "")
	assert.True(t, ok)
	for _, issue := range issues {
		assert.GreaterOrEqual(t, issue.Line, 1)
		assert.GreaterOrEqual(t, issue.Column, 1)
	}
}

func TestJSON_SkipsNonObjectArrayElements(t *testing.T) {
	payload := parse(t, `[{"severity": "hint", "code": "h"}, "garbage", 7]`)

	issues, ok := decode.JSON(payload, "")
	assert.True(t, ok)
	assert.Len(t, issues, 1)
}

func TestJSON_UnknownSeverityDegradesToHint(t *testing.T) {
	payload := parse(t, `[{"severity": "catastrophic", "code": "c"}]`)

	issues, ok := decode.JSON(payload, "")
	assert.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityHint, issues[0].Severity)
}
