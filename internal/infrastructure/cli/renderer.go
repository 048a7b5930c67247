package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/infrastructure/executor"
	"github.com/llmshell/llmshell/internal/ports"
)

// durationRounding keeps displayed durations readable.
const durationRounding = time.Millisecond

// Renderer prints pipeline output in a friendly, ASCII-only format.
type Renderer struct {
	out     io.Writer
	verbose bool
}

// NewRenderer constructs a renderer; a nil writer defaults to stdout.
func NewRenderer(out io.Writer, verbose bool) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out, verbose: verbose}
}

// Candidates renders every candidate with availability and a description.
func (r *Renderer) Candidates(input string, candidates []domain.Candidate) {
	fmt.Fprintf(r.out, "\nCommands for: %s\n", input)

	width := len("Command")
	for _, c := range candidates {
		if len(c.Command) > width {
			width = len(c.Command)
		}
	}

	fmt.Fprintf(r.out, "  %-*s  %-10s  %s\n", width, "Command", "Status", "Description")
	fmt.Fprintf(r.out, "  %s  %s  %s\n", strings.Repeat("-", width), strings.Repeat("-", 10), strings.Repeat("-", 20))
	for _, c := range candidates {
		status := "Available"
		if !c.Exists {
			status = "Not Found"
		}
		fmt.Fprintf(r.out, "  %-*s  %-10s  %s\n", width, c.Command, status, domain.DescribeCommand(c.Command))
	}
}

// Result renders an execution result, truncating long output.
func (r *Renderer) Result(command string, result domain.ExecutionResult, maxLines int) {
	fmt.Fprintln(r.out, strings.Repeat("-", 50))

	if result.TimedOut {
		fmt.Fprintf(r.out, "Command timed out after %s.\n", result.Duration.Round(durationRounding))
		return
	}

	if result.Stdout != "" {
		fmt.Fprintln(r.out, "Output:")
		fmt.Fprintln(r.out, executor.FormatOutput(strings.TrimRight(result.Stdout, "\n"), maxLines))
	}
	if result.Stderr != "" {
		fmt.Fprintln(r.out, "Errors:")
		fmt.Fprintln(r.out, executor.FormatOutput(strings.TrimRight(result.Stderr, "\n"), maxLines))
	}

	if result.ExitCode != 0 {
		fmt.Fprintf(r.out, "Command exited with code: %d\n", result.ExitCode)
	} else {
		fmt.Fprintln(r.out, "Command executed successfully.")
	}

	if r.verbose {
		fmt.Fprintf(r.out, "(%s stdout, %s stderr, %s)\n",
			humanize.IBytes(uint64(len(result.Stdout))),
			humanize.IBytes(uint64(len(result.Stderr))),
			result.Duration.Round(durationRounding))
	}
}

// Notice prints a one-line status message.
func (r *Renderer) Notice(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

var _ ports.Renderer = (*Renderer)(nil)
