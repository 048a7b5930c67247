//go:build !windows

package executor

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestExecuteCapturesStdout(t *testing.T) {
	e := New("/bin/sh", 5*time.Second)

	result, err := e.Execute(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Fatalf("stdout = %q, want hello", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0", result.ExitCode)
	}
	if result.TimedOut {
		t.Fatal("unexpected timeout")
	}
}

func TestExecuteReportsNonZeroExit(t *testing.T) {
	e := New("/bin/sh", 5*time.Second)

	result, err := e.Execute(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an executor error, got %v", err)
	}
	if result.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", result.ExitCode)
	}
}

func TestExecuteCapturesStderr(t *testing.T) {
	e := New("/bin/sh", 5*time.Second)

	result, err := e.Execute(context.Background(), "echo oops 1>&2")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if strings.TrimSpace(result.Stderr) != "oops" {
		t.Fatalf("stderr = %q, want oops", result.Stderr)
	}
}

func TestExecuteTimesOut(t *testing.T) {
	e := New("/bin/sh", 100*time.Millisecond)

	start := time.Now()
	result, err := e.Execute(context.Background(), "sleep 5")
	if err != nil {
		t.Fatalf("timeout should not be an executor error, got %v", err)
	}
	if !result.TimedOut {
		t.Fatal("expected TimedOut to be set")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("child was not killed promptly, took %s", elapsed)
	}
}
