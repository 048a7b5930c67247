package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/llmshell/llmshell/internal/application/shell"
	"github.com/llmshell/llmshell/internal/domain"
)

// InteractiveLoop reads natural-language requests line by line with history
// and line editing, keyed on a '?' prompt. 'exit' or 'quit' terminates; an
// interrupt during the read re-prompts; EOF terminates.
type InteractiveLoop struct {
	service     *shell.Service
	line        *liner.State
	historyFile string
}

// NewInteractiveLoop sets up the line editor with persisted prompt history
// under the config directory.
func NewInteractiveLoop(service *shell.Service) *InteractiveLoop {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(configDir(), "prompt_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	return &InteractiveLoop{
		service:     service,
		line:        line,
		historyFile: historyFile,
	}
}

// Run processes inputs until exit/quit or EOF.
func (l *InteractiveLoop) Run() error {
	defer l.Close()

	fmt.Println("LLMShell - Natural language to system commands")
	fmt.Println("Type 'exit' or 'quit' to exit, 'help' for help")
	fmt.Println()

	for {
		input, err := l.line.Prompt("? ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("\nUse 'exit' or 'quit' to exit")
				continue
			}
			// EOF or a broken terminal ends the session.
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return nil
		case "help":
			printHelp()
			continue
		}

		l.line.AppendHistory(input)
		if err := l.runCycle(input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	fmt.Println("Goodbye!")
	return nil
}

// runCycle processes one input under its own interrupt scope. An interrupt
// while a command or provider call is in flight aborts that cycle only; the
// session stays usable afterwards.
func (l *InteractiveLoop) runCycle(input string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := l.service.Process(ctx, input, false)
	if ctx.Err() != nil {
		fmt.Println("\nInterrupted")
		return nil
	}
	return err
}

// Close persists prompt history and restores the terminal.
func (l *InteractiveLoop) Close() {
	if err := os.MkdirAll(filepath.Dir(l.historyFile), domain.DirectoryPermissions); err == nil {
		if f, err := os.OpenFile(l.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.SecureFilePermissions); err == nil {
			_, _ = l.line.WriteHistory(f)
			f.Close()
		}
	}
	l.line.Close()
}

func printHelp() {
	fmt.Print(`
Commands:
  exit, quit  - Exit the shell
  help        - Show this help

Examples:
  show network ip          - Get network IP information
  find large files         - Find large files in current directory
  check system memory      - Check system memory usage
  list running processes   - List running processes

The translated command is always shown before execution, and you can
decline it if it does not look right.

`)
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".llmshell")
}
