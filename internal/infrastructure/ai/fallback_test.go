package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFallbackSubstringMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "network ip phrase",
			input: "show network ip",
			want:  []string{"ip addr show", "ifconfig", "hostname -I"},
		},
		{
			name:  "phrase embedded in longer input",
			input: "please show network ip for this host",
			want:  []string{"ip addr show", "ifconfig", "hostname -I"},
		},
		{
			name:  "find large files",
			input: "find large files",
			want:  []string{"find . -type f -size +100M", "du -h | sort -hr | head -10"},
		},
		{
			name:  "case insensitive",
			input: "CHECK MEMORY now",
			want:  []string{"free -h", "top -l 1 | head -10", "vm_stat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackCommands(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FallbackCommands(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestFallbackSubstringPrecedesWordMatch(t *testing.T) {
	// "disk" alone matches "disk space" only by word, but the full phrase
	// "disk usage" matches by substring and must win over earlier entries.
	got := FallbackCommands("what is my disk usage")
	want := []string{"df -h", "du -h | sort -hr | head -10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackWordMatch(t *testing.T) {
	// No phrase is a substring of this input, but "memory" appears as a
	// word of the "check memory" entry, the first word-level hit in order.
	got := FallbackCommands("memory please")
	want := []string{"free -h", "top -l 1 | head -10", "vm_stat"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackNoMatchReturnsEmpty(t *testing.T) {
	if got := FallbackCommands("xyzzy plugh"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
