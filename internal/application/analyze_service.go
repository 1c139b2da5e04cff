package application

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/dartlens/dartlens/internal/domain"
	"github.com/dartlens/dartlens/internal/domain/decode"
)

// AnalyzeService orchestrates the normalization pipeline:
// invoke analyzer (JSON) → decode JSON → fall back to text report →
// fall back to the host's diagnostics snapshot.
//
// It is the only component aware of the fallback order; the decoders
// themselves never fail on content.
type AnalyzeService struct {
	invoker   domain.ToolInvoker
	snapshots domain.SnapshotProvider
	logger    *zap.Logger
}

func NewAnalyzeService(invoker domain.ToolInvoker, snapshots domain.SnapshotProvider, logger *zap.Logger) *AnalyzeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeService{
		invoker:   invoker,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Analyze runs the pipeline for one session. While a run is in flight for
// the session, further calls are silent no-ops that return the previous
// result unchanged; they are not queued. The new collection replaces the
// old one atomically once the run completes.
func (s *AnalyzeService) Analyze(ctx context.Context, session *Session) (*domain.Result, error) {
	if session.Root() == "" {
		return &domain.Result{Status: "no analysis root available"}, nil
	}

	if !session.begin() {
		s.logger.Debug("analysis already in flight, dropping request",
			zap.String("root", session.Root()))
		return session.Result(), nil
	}
	defer session.end()

	issues, strategy, err := s.collect(ctx, session.Root(), session.Mode())
	if err != nil {
		return nil, err
	}

	result := domain.NewResult(session.Root(), strategy, issues)
	session.replace(result)

	s.logger.Debug("analysis complete",
		zap.String("root", session.Root()),
		zap.String("strategy", string(strategy)),
		zap.Int("issues", len(issues)))

	return result, nil
}

// collect walks the fallback chain and returns the first usable collection.
func (s *AnalyzeService) collect(ctx context.Context, root string, mode domain.ToolMode) ([]domain.Issue, domain.Strategy, error) {
	stdout, stderr, err := s.invoker.Invoke(ctx, root, mode, domain.FormatJSON)
	if err != nil {
		s.logger.Warn("analyzer invocation failed, falling back to diagnostics snapshot",
			zap.Error(err))
		return s.fromSnapshot(root, err)
	}

	if stdout == "" {
		if stderr != "" {
			// The tool ran but only complained; its JSON mode is unusable.
			s.logger.Warn("analyzer produced no output, falling back to text report",
				zap.Int("stderr_bytes", len(stderr)))
			return s.fromTextReport(ctx, root, mode)
		}
		// Clean run with nothing to report.
		return nil, domain.StrategyJSON, nil
	}

	var payload any
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		s.logger.Warn("analyzer output is not JSON, falling back to text report",
			zap.Error(err))
		return s.fromTextReport(ctx, root, mode)
	}

	issues, recognized := decode.JSON(payload, root)
	if !recognized {
		// Valid JSON in a shape we do not know. Treat like a parse failure
		// rather than silently reporting zero issues.
		s.logger.Warn("analyzer JSON has unrecognized shape, falling back to text report")
		return s.fromTextReport(ctx, root, mode)
	}
	return issues, domain.StrategyJSON, nil
}

func (s *AnalyzeService) fromTextReport(ctx context.Context, root string, mode domain.ToolMode) ([]domain.Issue, domain.Strategy, error) {
	stdout, _, err := s.invoker.Invoke(ctx, root, mode, domain.FormatText)
	if err != nil {
		s.logger.Warn("text-mode invocation failed, falling back to diagnostics snapshot",
			zap.Error(err))
		return s.fromSnapshot(root, err)
	}
	return decode.Text(stdout, root), domain.StrategyText, nil
}

// fromSnapshot is the final fallback. It is only reached after the analyzer
// could not be invoked at all, so an empty or unavailable snapshot is the
// one condition surfaced to the user as an error.
func (s *AnalyzeService) fromSnapshot(root string, invokeErr error) ([]domain.Issue, domain.Strategy, error) {
	snap, err := s.snapshots.Snapshot()
	if err != nil {
		return nil, "", fmt.Errorf("analyzer unavailable (%v) and diagnostics snapshot failed: %w", invokeErr, err)
	}

	issues := decode.Snapshot(snap, root)
	if len(issues) == 0 {
		return nil, "", fmt.Errorf("analyzer unavailable and no diagnostics known: %w", invokeErr)
	}
	return issues, domain.StrategySnapshot, nil
}
