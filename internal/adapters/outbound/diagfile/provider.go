// Package diagfile reads a diagnostics snapshot from an exported dump file.
// Editors that track analyzer diagnostics can export their registry as
// .dartlens/diagnostics.json (file URIs keyed to diagnostic arrays); this
// provider materializes that dump as the pipeline's final fallback.
package diagfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dartlens/dartlens/internal/domain"
)

const snapshotFile = ".dartlens/diagnostics.json"

// FileProvider implements domain.SnapshotProvider from a dump file under
// the analysis root.
type FileProvider struct {
	root string
}

func New(root string) *FileProvider {
	return &FileProvider{root: root}
}

// Snapshot reads the dump at call time. A missing or unreadable file is a
// provider failure: the fallback chain has nothing left to try.
func (p *FileProvider) Snapshot() (domain.DiagnosticSnapshot, error) {
	data, err := os.ReadFile(filepath.Join(p.root, snapshotFile))
	if err != nil {
		return nil, fmt.Errorf("reading diagnostics snapshot: %w", err)
	}

	var snap domain.DiagnosticSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", snapshotFile, err)
	}

	return snap, nil
}
