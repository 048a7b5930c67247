package ai

import (
	"encoding/json"
	"strings"
)

// parseCandidates extracts candidate commands from a provider reply. The
// reply is expected to be a JSON array of strings; anything else is parsed
// line by line, skipping blanks and comment lines and unwrapping single
// backtick pairs.
func parseCandidates(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	if commands, ok := parseJSONArray(content); ok {
		return commands
	}
	return parseLines(content)
}

func parseJSONArray(content string) ([]string, bool) {
	var raw []string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, false
	}
	commands := make([]string, 0, len(raw))
	for _, cmd := range raw {
		cmd = strings.TrimSpace(cmd)
		if cmd != "" {
			commands = append(commands, cmd)
		}
	}
	return commands, true
}

func parseLines(content string) []string {
	var commands []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "`") && strings.HasSuffix(line, "`") && len(line) > 1 {
			line = line[1 : len(line)-1]
		}
		commands = append(commands, line)
	}
	return commands
}
