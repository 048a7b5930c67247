// Package validator resolves command names against the host search path.
package validator

import (
	"os/exec"

	"github.com/llmshell/llmshell/internal/ports"
)

// PathValidator implements ports.CommandValidator with a process-lifetime
// memo cache. The pipeline is single-threaded, so the cache needs no locking.
type PathValidator struct {
	lookPath func(string) (string, error)
	cache    map[string]bool
}

// New builds a validator backed by exec.LookPath.
func New() *PathValidator {
	return &PathValidator{
		lookPath: exec.LookPath,
		cache:    make(map[string]bool),
	}
}

// CommandExists reports whether name resolves to an executable on PATH.
// Resolution errors count as "does not exist" and are cached as such.
func (v *PathValidator) CommandExists(name string) bool {
	if exists, ok := v.cache[name]; ok {
		return exists
	}
	_, err := v.lookPath(name)
	exists := err == nil
	v.cache[name] = exists
	return exists
}

// CommandPath returns the resolved absolute path for name, or false when the
// command cannot be found.
func (v *PathValidator) CommandPath(name string) (string, bool) {
	path, err := v.lookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// IsExecutable resolves name and confirms the current user may execute it.
func (v *PathValidator) IsExecutable(name string) bool {
	path, ok := v.CommandPath(name)
	if !ok {
		return false
	}
	return accessExecutable(path)
}

var _ ports.CommandValidator = (*PathValidator)(nil)
