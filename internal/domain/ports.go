package domain

import "context"

// ToolMode selects which SDK analyzer binary is invoked.
type ToolMode string

const (
	ToolDart    ToolMode = "dart"
	ToolFlutter ToolMode = "flutter"
)

// OutputFormat selects the analyzer's output variant.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// ToolInvoker runs the external analyzer and captures its output streams.
// A non-nil error means the process itself failed: spawn failure, missing
// executable, or output exceeding the invoker's hard cap.
type ToolInvoker interface {
	Invoke(ctx context.Context, root string, mode ToolMode, format OutputFormat) (stdout, stderr string, err error)
}

// SnapshotProvider returns the host's current diagnostics, taken at the
// moment of the call.
type SnapshotProvider interface {
	Snapshot() (DiagnosticSnapshot, error)
}

// RootResolver supplies the analysis root for a session.
type RootResolver interface {
	Root(start string) (string, error)
}

// ConfigLoader reads project-level configuration from the analysis root.
type ConfigLoader interface {
	Load(root string) (ProjectConfig, error)
}

// RunHistory persists one summary entry per completed analysis run.
type RunHistory interface {
	Save(root string, entry RunEntry) error
	Load(root string) ([]RunEntry, error)
}

// GitInfo reports version-control metadata for the analysis root.
type GitInfo interface {
	IsGitRepo(root string) bool
	CommitHash(root string) (string, error)
}

// RunEntry is one line of run history.
type RunEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	Errors       int    `json:"errors"`
	Warnings     int    `json:"warnings"`
	InfoAndHints int    `json:"info_and_hints"`
	Strategy     string `json:"strategy"`
}
