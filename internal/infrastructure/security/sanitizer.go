// Package security implements the denylist sanitizer that keeps
// known-destructive command patterns from executing.
package security

import (
	"fmt"
	"strings"

	"github.com/llmshell/llmshell/internal/ports"
)

// dangerPatterns are matched as lowercase substrings, in order. This is a
// best-effort guard: no shell parsing, no handling of chaining or
// obfuscation.
var dangerPatterns = []string{
	"rm -rf /",
	"rm -rf /*",
	"dd if=/dev/zero",
	"mkfs",
	"fdisk",
	"parted",
	"format",
}

// DangerError reports which denylisted pattern a command contained.
type DangerError struct {
	Pattern string
}

func (e *DangerError) Error() string {
	return fmt.Sprintf("dangerous command pattern detected: %s", e.Pattern)
}

// Sanitizer implements ports.Sanitizer.
type Sanitizer struct {
	enabled bool
}

// New builds a sanitizer; when disabled, commands pass through unchanged.
func New(enabled bool) *Sanitizer {
	return &Sanitizer{enabled: enabled}
}

// Sanitize returns the command unchanged, or a DangerError naming the first
// denylisted pattern found in its lowercase form.
func (s *Sanitizer) Sanitize(command string) (string, error) {
	if !s.enabled {
		return command, nil
	}

	lower := strings.ToLower(command)
	for _, pattern := range dangerPatterns {
		if strings.Contains(lower, pattern) {
			return "", &DangerError{Pattern: pattern}
		}
	}
	return command, nil
}

var _ ports.Sanitizer = (*Sanitizer)(nil)
