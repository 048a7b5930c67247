package cli

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/llmshell/llmshell/internal/application/shell"
	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/pkg/logger"
)

// interruptingTranslator raises an interrupt during its first call and
// records what each call's context looked like.
type interruptingTranslator struct {
	calls   int
	ctxErrs []error
}

func (s *interruptingTranslator) Translate(ctx context.Context, _ string) []string {
	s.calls++
	if s.calls == 1 {
		if proc, err := os.FindProcess(os.Getpid()); err == nil {
			_ = proc.Signal(os.Interrupt)
		}
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
	}
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	return nil
}

type passValidator struct{}

func (passValidator) CommandExists(string) bool         { return true }
func (passValidator) CommandPath(string) (string, bool) { return "/bin/true", true }
func (passValidator) IsExecutable(string) bool          { return true }

type passSanitizer struct{}

func (passSanitizer) Sanitize(command string) (string, error) { return command, nil }

type noopExecutor struct{}

func (noopExecutor) Execute(context.Context, string) (domain.ExecutionResult, error) {
	return domain.ExecutionResult{}, nil
}

type declinePrompter struct{}

func (declinePrompter) ConfirmOne(string) (bool, error)       { return false, nil }
func (declinePrompter) Select([]string) (string, bool, error) { return "", false, nil }
func (declinePrompter) Enabled() bool                         { return false }

type silentRenderer struct{}

func (silentRenderer) Candidates(string, []domain.Candidate)      {}
func (silentRenderer) Result(string, domain.ExecutionResult, int) {}
func (silentRenderer) Notice(string, ...interface{})              {}

func TestRunCycleInterruptLeavesNextCycleUsable(t *testing.T) {
	translator := &interruptingTranslator{}
	loop := &InteractiveLoop{service: &shell.Service{
		Translator: translator,
		Validator:  passValidator{},
		Sanitizer:  passSanitizer{},
		Executor:   noopExecutor{},
		Prompter:   declinePrompter{},
		Renderer:   silentRenderer{},
		Logger:     logger.NewStd(false),
		Config: domain.Config{
			UI: domain.UISettings{ShowConfirmations: true, MaxOutputLines: 50},
		},
	}}

	if err := loop.runCycle("first request"); err != nil {
		t.Fatalf("interrupted cycle should not surface an error: %v", err)
	}
	if err := loop.runCycle("second request"); err != nil {
		t.Fatalf("runCycle error: %v", err)
	}

	if len(translator.ctxErrs) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(translator.ctxErrs))
	}
	if translator.ctxErrs[0] == nil {
		t.Fatal("first cycle's context should have been cancelled by the interrupt")
	}
	if translator.ctxErrs[1] != nil {
		t.Fatalf("second cycle inherited a dead context: %v", translator.ctxErrs[1])
	}
}
