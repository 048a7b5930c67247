package domain

import "testing"

func TestBaseCommand(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"ls -la", "ls"},
		{"  du -h | sort", "du"},
		{"grep", "grep"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := BaseCommand(tt.command); got != tt.want {
			t.Errorf("BaseCommand(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}

func TestDescribeCommand(t *testing.T) {
	if got := DescribeCommand("ls -la"); got != "List directory contents" {
		t.Fatalf("DescribeCommand(ls -la) = %q", got)
	}
	if got := DescribeCommand("madeupcmd123 -x"); got != "System command" {
		t.Fatalf("unknown command description = %q, want generic", got)
	}
}
