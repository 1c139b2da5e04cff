package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dartlens/dartlens/internal/adapters/outbound/config"
	"github.com/dartlens/dartlens/internal/adapters/outbound/diagfile"
	"github.com/dartlens/dartlens/internal/adapters/outbound/gitinfo"
	"github.com/dartlens/dartlens/internal/adapters/outbound/history"
	"github.com/dartlens/dartlens/internal/adapters/outbound/invoker"
	"github.com/dartlens/dartlens/internal/adapters/outbound/scanner"
	"github.com/dartlens/dartlens/internal/adapters/outbound/tui"
	"github.com/dartlens/dartlens/internal/application"
	"github.com/dartlens/dartlens/internal/domain"
)

func newAnalyzeCmd(verbose *bool) *cobra.Command {
	var (
		jsonOutput  bool
		flutterMode bool
		failOn      string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Run the analyzer and show normalized issues",
		Long:  "Invoke dart analyze (or flutter analyze), normalize its output, and print issues grouped by file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			logger := newLogger(*verbose)
			defer func() { _ = logger.Sync() }()

			setup, err := newPipeline(path, flutterMode, logger)
			if err != nil {
				// No workspace root is a status, not a stack trace.
				fmt.Fprintf(cmd.OutOrStdout(), "dartlens: %v\n", err)
				return nil
			}

			if showHistory {
				entries, err := setup.history.Load(setup.root)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			result, err := setup.service.Analyze(cmd.Context(), setup.session)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if hash, err := setup.git.CommitHash(setup.root); err == nil {
				result.CommitHash = hash
			}
			saveRunEntry(setup.history, setup.root, result)

			display := result
			if setup.cfg.MinSeverity != "" {
				filtered := domain.FilterMinSeverity(result.Issues, setup.cfg.MinSeverity)
				display = domain.NewResult(result.Root, result.Strategy, filtered)
				display.CommitHash = result.CommitHash
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(display); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(display))
			}

			return checkFailOn(failOn, display.Summary)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&flutterMode, "flutter", false, "Invoke flutter analyze instead of dart analyze")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit non-zero when issues of this severity exist (error, warning)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show run history instead of analyzing")

	return cmd
}

// pipeline bundles everything one analysis surface needs.
type pipeline struct {
	root    string
	cfg     domain.ProjectConfig
	service *application.AnalyzeService
	session *application.Session
	scan    *domain.ScanResult
	git     domain.GitInfo
	history domain.RunHistory
}

// newPipeline resolves the analysis root, loads config, and wires the
// adapters into an analyze service plus a fresh session.
func newPipeline(start string, flutterMode bool, logger *zap.Logger) (*pipeline, error) {
	sc := scanner.New()

	root, err := sc.Root(start)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New().Load(root)
	if err != nil {
		return nil, err
	}

	scan, err := sc.Scan(root, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	mode := cfg.Tool
	if flutterMode {
		mode = domain.ToolFlutter
	}
	if mode == "" {
		mode = domain.ToolDart
		if scan.IsFlutter {
			mode = domain.ToolFlutter
		}
	}

	svc := application.NewAnalyzeService(invoker.New(logger), diagfile.New(root), logger)

	return &pipeline{
		root:    root,
		cfg:     cfg,
		service: svc,
		session: application.NewSession(root, mode),
		scan:    scan,
		git:     gitinfo.New(),
		history: history.New(),
	}, nil
}

// saveRunEntry appends the run to history, best-effort.
func saveRunEntry(hist domain.RunHistory, root string, result *domain.Result) {
	_ = hist.Save(root, domain.RunEntry{
		Timestamp:    time.Now().Format(time.RFC3339),
		CommitHash:   result.CommitHash,
		Errors:       result.Summary.Errors,
		Warnings:     result.Summary.Warnings,
		InfoAndHints: result.Summary.InfoAndHints,
		Strategy:     string(result.Strategy),
	})
}

func checkFailOn(failOn string, sum domain.Summary) error {
	switch failOn {
	case "":
		return nil
	case "error":
		if sum.Errors > 0 {
			return fmt.Errorf("found %d errors", sum.Errors)
		}
	case "warning":
		if sum.Errors+sum.Warnings > 0 {
			return fmt.Errorf("found %d errors and %d warnings", sum.Errors, sum.Warnings)
		}
	default:
		return fmt.Errorf("unknown --fail-on value %q (valid: error, warning)", failOn)
	}
	return nil
}
