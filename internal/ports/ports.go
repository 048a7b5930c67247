// Package ports defines the interfaces between the application core and the
// infrastructure adapters. The pipeline (translate -> validate -> display ->
// confirm -> execute) depends only on these abstractions so it can be tested
// with injected implementations.
package ports

import (
	"context"

	"github.com/llmshell/llmshell/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.llmshell/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Translator converts a natural-language request into an ordered list of
// candidate command strings. It never fails: provider errors and unusable
// replies degrade to a static fallback mapping.
type Translator interface {
	Translate(ctx context.Context, input string) []string
}

// CommandValidator checks whether a token names an executable resolvable on
// the host search path. Results are memoized for the process lifetime.
type CommandValidator interface {
	CommandExists(name string) bool
	CommandPath(name string) (string, bool)
	IsExecutable(name string) bool
}

// Sanitizer rejects command strings containing known-destructive patterns.
// A best-effort substring guard, not a security boundary.
type Sanitizer interface {
	Sanitize(command string) (string, error)
}

// CommandExecutor runs a command through the host shell, bounded by a
// wall-clock timeout, capturing stdout, stderr, and the exit code.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ConfirmationPrompter handles interactive confirmation before execution.
// Enabled reports whether the prompter can actually interact with a user;
// non-interactive sessions decline rather than hang.
type ConfirmationPrompter interface {
	ConfirmOne(command string) (bool, error)
	Select(commands []string) (string, bool, error)
	Enabled() bool
}

// Renderer displays candidates and execution results to the operator.
type Renderer interface {
	Candidates(input string, candidates []domain.Candidate)
	Result(command string, result domain.ExecutionResult, maxLines int)
	Notice(format string, args ...interface{})
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
