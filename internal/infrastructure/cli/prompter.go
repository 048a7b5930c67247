package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/llmshell/llmshell/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter constructs a prompter referencing stdio. Interactivity follows
// the terminal: piped input declines instead of hanging on a prompt.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := true
	if in == nil {
		in = os.Stdin
		interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Enabled indicates the prompter can interact with the user.
func (p *Prompter) Enabled() bool {
	return p.interactive
}

// ConfirmOne asks a yes/no confirmation for a single command.
func (p *Prompter) ConfirmOne(command string) (bool, error) {
	if !p.interactive {
		return false, nil
	}
	fmt.Fprintf(p.out, "Execute: %s? [y/N]: ", command)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, nil
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

// Select enumerates the commands from 1, reads a numeric choice, and asks a
// yes/no confirmation for the selected entry. A non-numeric or out-of-range
// choice counts as declined.
func (p *Prompter) Select(commands []string) (string, bool, error) {
	if !p.interactive {
		return "", false, nil
	}

	fmt.Fprintln(p.out, "\nAvailable commands:")
	for i, cmd := range commands {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, cmd)
	}

	fmt.Fprint(p.out, "\nSelect command to execute (number): ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", false, nil
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(commands) {
		fmt.Fprintln(p.out, "Invalid selection.")
		return "", false, nil
	}

	command := commands[choice-1]
	ok, err := p.ConfirmOne(command)
	if err != nil {
		return "", false, err
	}
	return command, ok, nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
