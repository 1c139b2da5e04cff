package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dartlens/dartlens/internal/domain"
)

var skipDirs = map[string]bool{
	".git":       true,
	".dart_tool": true,
	".dartlens":  true,
	"build":      true,
	".idea":      true,
	"ios":        true,
	"android":    true,
}

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks root collecting Dart sources and the directory list watch mode
// needs. pubspec.yaml at the root marks a Dart project; a flutter
// dependency inside it marks a Flutter one.
func (s *FileScanner) Scan(root string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath] {
				return filepath.SkipDir
			}
			result.Dirs = append(result.Dirs, path)
			return nil
		}

		if d.Name() == "pubspec.yaml" && filepath.Dir(relPath) == "." {
			result.HasPubspec = true
			result.IsFlutter = pubspecUsesFlutter(path)
		}

		if strings.HasSuffix(d.Name(), ".dart") {
			result.DartFiles = append(result.DartFiles, relPath)
		}

		return nil
	})

	return result, err
}

// Root implements domain.RootResolver: it walks upward from start until it
// finds a directory holding pubspec.yaml. No such directory means there is
// no workspace to analyze.
func (s *FileScanner) Root(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "pubspec.yaml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no pubspec.yaml found in this directory or any parent")
		}
		dir = parent
	}
}

// pubspecUsesFlutter does a textual check only; the result is just a
// tool-mode default the user can override.
func pubspecUsesFlutter(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "flutter:")
}
