package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCandidatesJSONArray(t *testing.T) {
	content := `["ls -la", "  df -h  ", ""]`
	got := parseCandidates(content)
	want := []string{"ls -la", "df -h"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCandidatesLineFallback(t *testing.T) {
	content := "# the best options\nls -la\n\n// another idea\n`df -h`\n"
	got := parseCandidates(content)
	want := []string{"ls -la", "df -h"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCandidatesKeepsEncounterOrder(t *testing.T) {
	content := "du -h\nfind . -size +100M\nls -lh"
	got := parseCandidates(content)
	want := []string{"du -h", "find . -size +100M", "ls -lh"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCandidatesEmptyReply(t *testing.T) {
	if got := parseCandidates("   \n  "); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}
