package ai

import "strings"

// mappingEntry binds a lowercase phrase fragment to an ordered list of
// candidate commands.
type mappingEntry struct {
	phrase   string
	commands []string
}

// fallbackMappings is scanned in order: precedence is deterministic, so this
// stays an ordered slice rather than a map.
var fallbackMappings = []mappingEntry{
	{"show network ip", []string{"ip addr show", "ifconfig", "hostname -I"}},
	{"show ip", []string{"ip addr show", "ifconfig", "hostname -I"}},
	{"network ip", []string{"ip addr show", "ifconfig", "hostname -I"}},
	{"check memory", []string{"free -h", "top -l 1 | head -10", "vm_stat"}},
	{"system memory", []string{"free -h", "top -l 1 | head -10", "vm_stat"}},
	{"memory usage", []string{"free -h", "top -l 1 | head -10", "vm_stat"}},
	{"disk space", []string{"df -h", "du -h | sort -hr | head -10"}},
	{"disk usage", []string{"df -h", "du -h | sort -hr | head -10"}},
	{"list files", []string{"ls -la", "ls -lh"}},
	{"show files", []string{"ls -la", "ls -lh"}},
	{"running processes", []string{"ps aux", "top", "htop"}},
	{"process list", []string{"ps aux", "top", "htop"}},
	{"system processes", []string{"ps aux", "top", "htop"}},
	{"find large files", []string{"find . -type f -size +100M", "du -h | sort -hr | head -10"}},
	{"search files", []string{"find . -name '*pattern*'", "grep -r 'pattern' ."}},
	{"ping google", []string{"ping -c 4 google.com", "ping google.com"}},
	{"test connection", []string{"ping -c 4 google.com", "curl -I https://google.com"}},
	{"current directory", []string{"pwd", "ls -la"}},
	{"working directory", []string{"pwd", "ls -la"}},
	{"system info", []string{"uname -a", "cat /etc/os-release", "systeminfo"}},
	{"os info", []string{"uname -a", "cat /etc/os-release", "systeminfo"}},
	{"cpu info", []string{"lscpu", "cat /proc/cpuinfo", "sysctl -n machdep.cpu.brand_string"}},
	{"uptime", []string{"uptime", "w"}},
	{"who is logged in", []string{"who", "w", "users"}},
	{"logged users", []string{"who", "w", "users"}},
}

// FallbackCommands looks up candidate commands for an input without calling
// any provider. The first entry whose phrase is a substring of the lowercased
// input wins; failing that, the first entry any of whose words appears in the
// input; failing that, an empty list.
func FallbackCommands(input string) []string {
	lower := strings.ToLower(input)

	for _, entry := range fallbackMappings {
		if strings.Contains(lower, entry.phrase) {
			return entry.commands
		}
	}

	for _, entry := range fallbackMappings {
		for _, word := range strings.Fields(entry.phrase) {
			if strings.Contains(lower, word) {
				return entry.commands
			}
		}
	}

	return nil
}
