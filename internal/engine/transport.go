package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	sferrors "github.com/swiftfs/swiftfs/internal/errors"
)

// Transport issues a fully formed query to the index engine and returns
// its raw standard output. The call blocks until the engine process exits
// and its output is fully read.
type Transport interface {
	Query(ctx context.Context, args []string) (string, error)
}

// ProcessTransport runs the index engine binary as a child process.
type ProcessTransport struct {
	binary    string
	extraArgs []string
	logger    *slog.Logger

	// For testing: override command construction
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewProcessTransport creates a transport for the given engine binary.
// extraArgs are prepended to every query.
func NewProcessTransport(binary string, extraArgs []string, logger *slog.Logger) *ProcessTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessTransport{
		binary:      binary,
		extraArgs:   extraArgs,
		logger:      logger,
		execCommand: exec.CommandContext,
	}
}

// Query launches the engine non-interactively, captures its entire stdout,
// and returns it once the process exits. The issued query is written to the
// diagnostic log before invocation.
//
// Failure modes map to structured errors: ERR_301_ENGINE_START when the
// process cannot be started, ERR_302_ENGINE_EXIT (exit code attached) when
// it exits non-zero.
func (t *ProcessTransport) Query(ctx context.Context, args []string) (string, error) {
	full := make([]string, 0, len(t.extraArgs)+len(args))
	full = append(full, t.extraArgs...)
	full = append(full, args...)

	t.logger.Debug("issuing index query",
		slog.String("binary", t.binary),
		slog.String("query", strings.Join(full, " ")))

	cmd := t.execCommand(ctx, t.binary, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", sferrors.ExitError("index engine exited abnormally", exitErr.ExitCode(), err).
				WithDetail("binary", t.binary).
				WithDetail("stderr", strings.TrimSpace(stderr.String()))
		}
		return "", sferrors.TransportError("failed to start index engine", err).
			WithDetail("binary", t.binary).
			WithSuggestion("check that the index engine is installed and on PATH")
	}

	return stdout.String(), nil
}
