package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dartlens/dartlens/internal/domain"
)

const configFileName = ".dartlens.yaml"

func newInitCmd() *cobra.Command {
	var (
		tool  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .dartlens.yaml configuration file",
		Long:  "Create a .dartlens.yaml with commented defaults in the project root.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			mode := domain.ToolMode(tool)
			switch mode {
			case domain.ToolDart, domain.ToolFlutter:
			default:
				return fmt.Errorf("unknown tool %q (valid: dart, flutter)", tool)
			}

			if err := os.WriteFile(dest, []byte(generateConfig(mode)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "dart", "Analyzer to invoke (dart, flutter)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .dartlens.yaml")

	return cmd
}

func generateConfig(mode domain.ToolMode) string {
	return fmt.Sprintf(`# dartlens configuration
# See: https://github.com/dartlens/dartlens

tool: %s

# min_severity: warning

# exclude_paths:
#   - generated
#   - .fvm

# watch_debounce_ms: %d
`, mode, domain.DefaultWatchDebounceMS)
}
