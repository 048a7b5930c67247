package domain

import "time"

// ExecutionResult wraps details from the command executor. One result is
// produced per execution and never retained beyond display.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}
