// Package executor runs confirmed commands through the host shell with a
// hard wall-clock timeout.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/ports"
)

// LocalExecutor implements ports.CommandExecutor on the local host.
type LocalExecutor struct {
	shell   string
	timeout time.Duration
}

// New builds an executor. The shell defaults to $SHELL, then /bin/sh; a zero
// timeout falls back to the default execution bound.
func New(shell string, timeout time.Duration) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	if timeout <= 0 {
		timeout = domain.DefaultTimeoutSeconds * time.Second
	}
	return &LocalExecutor{shell: shell, timeout: timeout}
}

// Execute runs the command, capturing stdout, stderr, and the exit code.
// Hitting the timeout kills the child and sets TimedOut instead of failing.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := domain.ExecutionResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// Timeout exposes the configured execution bound.
func (e *LocalExecutor) Timeout() time.Duration {
	return e.timeout
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
