package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dartlens/dartlens/internal/adapters/outbound/tui"
)

func newWatchCmd(verbose *bool) *cobra.Command {
	var flutterMode bool

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-analyze whenever Dart sources change",
		Long:  "Run the analyzer once, then watch the project tree and re-run on every .dart or pubspec change, debounced.",
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
				fmt.Fprintf(cmd.OutOrStdout(), "dartlens: %v\n", err)
				return nil
			}

			runOnce := func() {
				result, err := setup.service.Analyze(cmd.Context(), setup.session)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "dartlens: %v\n", err)
					return
				}
				if result == nil {
					// A run was already in flight; its output stands.
					return
				}
				saveRunEntry(setup.history, setup.root, result)
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result))
			}

			runOnce()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			defer watcher.Close()

			for _, dir := range setup.scan.Dirs {
				if err := watcher.Add(dir); err != nil {
					logger.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
				}
			}

			debounce := time.Duration(setup.cfg.Debounce()) * time.Millisecond
			timer := time.NewTimer(debounce)
			if !timer.Stop() {
				<-timer.C
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", setup.root)

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !relevantChange(event) {
						continue
					}
					timer.Reset(debounce)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Warn("watch error", zap.Error(err))
				case <-timer.C:
					runOnce()
				}
			}
		},
	}

	cmd.Flags().BoolVar(&flutterMode, "flutter", false, "Invoke flutter analyze instead of dart analyze")

	return cmd
}

// relevantChange keeps only events that can alter analysis output.
func relevantChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := event.Name
	return strings.HasSuffix(name, ".dart") ||
		strings.HasSuffix(name, "pubspec.yaml") ||
		strings.HasSuffix(name, "analysis_options.yaml")
}
