package domain

import "time"

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for the config file (rw-------)
	SecureFilePermissions = 0o600
)

// Defaults applied when the config file omits a value.
const (
	// DefaultTimeoutSeconds bounds command execution wall-clock time
	DefaultTimeoutSeconds = 30
	// DefaultMaxOutputLines caps displayed stdout/stderr lines
	DefaultMaxOutputLines = 50
	// DefaultTheme is the syntax highlighting theme identifier
	DefaultTheme = "monokai"
	// DefaultHTTPClientTimeout bounds a single LLM request
	DefaultHTTPClientTimeout = 60 * time.Second
	// DefaultMaxTokens is the token budget requested per translation
	DefaultMaxTokens = 500
)
