package executor

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatOutputShortPassesThrough(t *testing.T) {
	output := "line1\nline2\nline3"
	if got := FormatOutput(output, 5); got != output {
		t.Fatalf("FormatOutput = %q, want unchanged", got)
	}
}

func TestFormatOutputTruncatesLongOutput(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, fmt.Sprintf("line%d", i))
	}
	got := FormatOutput(strings.Join(lines, "\n"), 10)

	gotLines := strings.Split(got, "\n")
	if len(gotLines) != 11 {
		t.Fatalf("expected 11 lines (10 + notice), got %d", len(gotLines))
	}
	if !strings.Contains(gotLines[10], "truncated") {
		t.Fatalf("last line is not a truncation notice: %q", gotLines[10])
	}
	if gotLines[0] != "line0" || gotLines[9] != "line9" {
		t.Fatalf("unexpected leading lines: %v", gotLines[:10])
	}
}

func TestFormatOutputAtCapUnchanged(t *testing.T) {
	output := "a\nb\nc"
	if got := FormatOutput(output, 3); got != output {
		t.Fatalf("FormatOutput at cap = %q, want unchanged", got)
	}
}

func TestFormatOutputEmpty(t *testing.T) {
	if got := FormatOutput("", 10); got != "" {
		t.Fatalf("FormatOutput(\"\") = %q, want empty", got)
	}
}
