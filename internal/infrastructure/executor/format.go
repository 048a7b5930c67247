package executor

import (
	"fmt"
	"strings"
)

// FormatOutput truncates command output to maxLines, appending a truncation
// notice when lines were cut. Output at or under the cap passes unchanged.
func FormatOutput(output string, maxLines int) string {
	if output == "" || maxLines <= 0 {
		return output
	}

	lines := strings.Split(output, "\n")
	if len(lines) <= maxLines {
		return output
	}

	lines = lines[:maxLines]
	lines = append(lines, fmt.Sprintf("... (truncated, showing first %d lines)", maxLines))
	return strings.Join(lines, "\n")
}
