package domain

import "fmt"

const (
	// DefaultWatchDebounceMS is how long watch mode waits after the last
	// file event before re-running analysis.
	DefaultWatchDebounceMS = 500
)

// ProjectConfig holds project-level configuration loaded from .dartlens.yaml.
type ProjectConfig struct {
	Tool            ToolMode `yaml:"tool"              json:"tool,omitempty"`
	MinSeverity     Severity `yaml:"min_severity"      json:"min_severity,omitempty"`
	ExcludePaths    []string `yaml:"exclude_paths"     json:"exclude_paths,omitempty"`
	WatchDebounceMS int      `yaml:"watch_debounce_ms" json:"watch_debounce_ms,omitempty"`
}

// DefaultConfig returns the configuration used when no .dartlens.yaml
// exists. Tool is left empty so the CLI can pick dart or flutter from the
// project's pubspec.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		WatchDebounceMS: DefaultWatchDebounceMS,
	}
}

// Validate catches typos in user-supplied raw input before it is merged.
func (c ProjectConfig) Validate() error {
	switch c.Tool {
	case "", ToolDart, ToolFlutter:
	default:
		return fmt.Errorf("unknown tool %q (valid: dart, flutter)", c.Tool)
	}

	if c.MinSeverity != "" {
		valid := false
		for _, s := range ValidSeverities {
			if c.MinSeverity == s {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown min_severity %q (valid: error, warning, info, hint)", c.MinSeverity)
		}
	}

	if c.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms must not be negative")
	}

	return nil
}

// Debounce returns the effective watch debounce, falling back to the default.
func (c ProjectConfig) Debounce() int {
	if c.WatchDebounceMS <= 0 {
		return DefaultWatchDebounceMS
	}
	return c.WatchDebounceMS
}
