// Package shell orchestrates one command cycle: translate the operator's
// natural-language input, validate candidates against the host, display
// them, confirm a choice, and execute it.
package shell

import (
	"context"
	"errors"

	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/ports"
)

// Service drives the pipeline. All dependencies are injected; Config is an
// explicit value so the pipeline is testable with arbitrary settings.
type Service struct {
	Translator ports.Translator
	Validator  ports.CommandValidator
	Sanitizer  ports.Sanitizer
	Executor   ports.CommandExecutor
	Prompter   ports.ConfirmationPrompter
	Renderer   ports.Renderer
	Logger     ports.Logger
	Config     domain.Config
}

// Process handles one natural-language input. Every per-cycle failure is
// reported and terminates only the current cycle; the returned error is
// reserved for unsatisfied dependencies.
func (s *Service) Process(ctx context.Context, input string, force bool) error {
	if s.Translator == nil || s.Validator == nil || s.Sanitizer == nil ||
		s.Executor == nil || s.Prompter == nil || s.Renderer == nil || s.Logger == nil {
		return errors.New("shell.Service dependencies not satisfied")
	}

	commands := s.Translator.Translate(ctx, input)
	if len(commands) == 0 {
		s.Renderer.Notice("No commands generated. Please try a different input.")
		return nil
	}

	candidates := s.Validate(commands)
	if len(candidates) == 0 {
		s.Renderer.Notice("No valid commands found. Please try a different input.")
		return nil
	}

	s.Renderer.Candidates(input, candidates)

	command, ok, err := s.choose(candidates, force)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if _, err := s.Sanitizer.Sanitize(command); err != nil {
		s.Renderer.Notice("Command rejected: %v", err)
		return nil
	}

	return s.execute(ctx, command)
}

// Validate annotates each candidate with an existence flag, preserving
// order. Syntactically empty candidates are skipped, not paired.
func (s *Service) Validate(commands []string) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(commands))
	for _, cmd := range commands {
		base := domain.BaseCommand(cmd)
		if base == "" {
			continue
		}
		exists := s.Validator.CommandExists(base)
		candidates = append(candidates, domain.Candidate{Command: cmd, Exists: exists})

		s.Logger.Debug("validated candidate", map[string]interface{}{
			"command": cmd,
			"exists":  exists,
		})
	}
	return candidates
}

// choose picks the command to run. Forced execution takes the first
// available candidate; otherwise the prompter asks for confirmation, with a
// numeric selection step when several candidates are available. A malformed
// selection counts as declined.
func (s *Service) choose(candidates []domain.Candidate, force bool) (string, bool, error) {
	available := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Exists {
			available = append(available, c.Command)
		}
	}

	if force {
		if len(available) == 0 {
			s.Renderer.Notice("No available commands to execute.")
			return "", false, nil
		}
		return available[0], true, nil
	}

	if !s.Config.UI.ShowConfirmations {
		return "", false, nil
	}

	switch len(available) {
	case 0:
		s.Renderer.Notice("No available commands to execute.")
		return "", false, nil
	case 1:
		ok, err := s.Prompter.ConfirmOne(available[0])
		if err != nil {
			return "", false, err
		}
		return available[0], ok, nil
	default:
		command, ok, err := s.Prompter.Select(available)
		if err != nil {
			return "", false, err
		}
		return command, ok, nil
	}
}

func (s *Service) execute(ctx context.Context, command string) error {
	s.Renderer.Notice("Executing: %s", command)

	result, err := s.Executor.Execute(ctx, command)
	if err != nil {
		s.Renderer.Notice("Error executing command: %v", err)
		return nil
	}

	s.Logger.Debug("execution finished", map[string]interface{}{
		"exit_code": result.ExitCode,
		"timed_out": result.TimedOut,
		"duration":  result.Duration.String(),
	})

	s.Renderer.Result(command, result, s.Config.UI.MaxOutputLines)
	return nil
}
