// Package invoker runs the Dart or Flutter SDK analyzer as a subprocess and
// captures its output streams in full.
package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/dartlens/dartlens/internal/domain"
)

// MaxOutputBytes caps each captured stream. Analyzer output on large
// projects can run well past 10 MB; hitting the cap is an invocation
// failure, never a silent truncation.
const MaxOutputBytes = 16 * 1024 * 1024

// ErrOutputTooLarge reports that the analyzer wrote more than the cap.
var ErrOutputTooLarge = errors.New("analyzer output exceeds capture limit")

// CommandInvoker implements domain.ToolInvoker with os/exec.
type CommandInvoker struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *CommandInvoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandInvoker{logger: logger}
}

// Invoke runs `dart analyze` or `flutter analyze` in root. The JSON format
// adds --format=json; the text variant is the tool's default human report.
// Exit code 1 is how the analyzer signals "issues found", so it is not an
// invocation failure as long as the tool produced output.
func (i *CommandInvoker) Invoke(ctx context.Context, root string, mode domain.ToolMode, format domain.OutputFormat) (string, string, error) {
	name, args := command(mode, format)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = root

	var stdout, stderr cappedBuffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	i.logger.Debug("invoking analyzer",
		zap.String("tool", name),
		zap.Strings("args", args),
		zap.String("root", root))

	err := cmd.Run()

	if stdout.overflowed || stderr.overflowed {
		return "", "", fmt.Errorf("%s %s: %w", name, args[0], ErrOutputTooLarge)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && (stdout.Len() > 0 || stderr.Len() > 0) {
			// Non-zero exit with captured output: findings, not failure.
			return stdout.String(), stderr.String(), nil
		}
		return "", "", fmt.Errorf("running %s: %w", name, err)
	}

	return stdout.String(), stderr.String(), nil
}

func command(mode domain.ToolMode, format domain.OutputFormat) (string, []string) {
	name := "dart"
	if mode == domain.ToolFlutter {
		name = "flutter"
	}
	args := []string{"analyze"}
	if format == domain.FormatJSON {
		args = append(args, "--format=json")
	}
	return name, args
}

// cappedBuffer accumulates up to MaxOutputBytes and records overflow
// instead of truncating.
type cappedBuffer struct {
	buf        bytes.Buffer
	overflowed bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.overflowed {
		return len(p), nil
	}
	if b.buf.Len()+len(p) > MaxOutputBytes {
		b.overflowed = true
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) Len() int       { return b.buf.Len() }
func (b *cappedBuffer) String() string { return b.buf.String() }
