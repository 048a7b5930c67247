// Package domain defines the core entities of llmshell: configuration,
// candidate commands, and execution results. It is independent of
// infrastructure concerns.
package domain

import "strings"

// Candidate pairs one proposed shell invocation with its validation state.
// Candidates are produced by translation, annotated during validation, and
// discarded when the interaction completes.
type Candidate struct {
	Command string
	Exists  bool
}

// BaseCommand returns the first whitespace-delimited token of a command
// string, used for existence and description lookups. Empty for blank input.
func BaseCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// commandDescriptions maps base command names to short summaries shown next
// to each candidate.
var commandDescriptions = map[string]string{
	"ls":       "List directory contents",
	"cat":      "Display file contents",
	"grep":     "Search for patterns in files",
	"find":     "Find files and directories",
	"ps":       "Show process status",
	"top":      "Display system processes",
	"df":       "Show disk space usage",
	"du":       "Show directory space usage",
	"netstat":  "Show network statistics",
	"ifconfig": "Configure network interfaces",
	"ip":       "Show/manipulate routing",
	"ping":     "Test network connectivity",
	"curl":     "Transfer data from/to servers",
	"wget":     "Retrieve files from web",
	"tar":      "Archive files",
	"zip":      "Compress files",
	"unzip":    "Extract compressed files",
	"chmod":    "Change file permissions",
	"chown":    "Change file ownership",
	"sudo":     "Execute command as superuser",
}

// DescribeCommand returns a short human-readable description for a command,
// keyed on its base token. Unknown commands get a generic description.
func DescribeCommand(command string) string {
	if desc, ok := commandDescriptions[BaseCommand(command)]; ok {
		return desc
	}
	return "System command"
}
