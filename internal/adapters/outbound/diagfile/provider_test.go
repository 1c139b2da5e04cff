package diagfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dartlens/dartlens/internal/adapters/outbound/diagfile"
	"github.com/dartlens/dartlens/internal/domain"
)

func writeSnapshot(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, ".dartlens")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "diagnostics.json"), []byte(content), 0644))
}

func TestSnapshot_ReadsDump(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, `{
		"file:///root/lib/a.dart": [
			{"severity": 1, "code": "unused_import", "message": "Unused import",
			 "range": {"start": {"line": 9, "character": 0}, "end": {"line": 9, "character": 20}}}
		]
	}`)

	snap, err := diagfile.New(root).Snapshot()
	require.NoError(t, err)

	diags := snap["file:///root/lib/a.dart"]
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagnosticError, diags[0].Severity)
	assert.Equal(t, "unused_import", diags[0].Code)
	assert.Equal(t, 9, diags[0].Range.Start.Line)
}

func TestSnapshot_MissingFileFails(t *testing.T) {
	_, err := diagfile.New(t.TempDir()).Snapshot()
	assert.ErrorContains(t, err, "reading diagnostics snapshot")
}

func TestSnapshot_MalformedDumpFails(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "{not json")

	_, err := diagfile.New(root).Snapshot()
	assert.ErrorContains(t, err, "parsing")
}

func TestSnapshot_ObjectCodeSurvivesRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, `{
		"file:///root/lib/a.dart": [
			{"severity": 4, "code": {"value": "prefer_const"}, "message": "m",
			 "range": {"start": {"line": 0, "character": 0}}}
		]
	}`)

	snap, err := diagfile.New(root).Snapshot()
	require.NoError(t, err)

	code, ok := snap["file:///root/lib/a.dart"][0].Code.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "prefer_const", code["value"])
}
