package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/llmshell/llmshell/internal/domain"
)

func TestRendererCandidates(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)

	r.Candidates("list files", []domain.Candidate{
		{Command: "ls -la", Exists: true},
		{Command: "madeupcmd123 -x", Exists: false},
	})

	text := out.String()
	if !strings.Contains(text, "Commands for: list files") {
		t.Fatalf("missing header: %s", text)
	}
	if !strings.Contains(text, "Available") || !strings.Contains(text, "Not Found") {
		t.Fatalf("missing statuses: %s", text)
	}
	if !strings.Contains(text, "List directory contents") {
		t.Fatalf("missing description: %s", text)
	}
}

func TestRendererResultTruncatesOutput(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "row")
	}

	var out bytes.Buffer
	r := NewRenderer(&out, false)
	r.Result("ls", domain.ExecutionResult{Stdout: strings.Join(lines, "\n")}, 5)

	if !strings.Contains(out.String(), "truncated") {
		t.Fatalf("expected truncation notice: %s", out.String())
	}
}

func TestRendererResultTimeout(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)
	r.Result("sleep 99", domain.ExecutionResult{TimedOut: true, Duration: 30 * time.Second}, 5)

	if !strings.Contains(out.String(), "timed out") {
		t.Fatalf("expected timeout message: %s", out.String())
	}
}

func TestRendererResultNonZeroExit(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)
	r.Result("false", domain.ExecutionResult{ExitCode: 1}, 5)

	if !strings.Contains(out.String(), "exited with code: 1") {
		t.Fatalf("expected exit code message: %s", out.String())
	}
}
