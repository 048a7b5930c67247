package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmOneAcceptsYes(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "yes\n", "YES\n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(answer), &out)

		ok, err := p.ConfirmOne("ls -la")
		if err != nil {
			t.Fatalf("ConfirmOne error: %v", err)
		}
		if !ok {
			t.Fatalf("answer %q should confirm", strings.TrimSpace(answer))
		}
	}
}

func TestConfirmOneDeclines(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "nope\n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(answer), &out)

		ok, err := p.ConfirmOne("ls -la")
		if err != nil {
			t.Fatalf("ConfirmOne error: %v", err)
		}
		if ok {
			t.Fatalf("answer %q should decline", strings.TrimSpace(answer))
		}
	}
}

func TestSelectPicksNumberedCommand(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2\ny\n"), &out)

	command, ok, err := p.Select([]string{"ls -la", "df -h", "du -h"})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if !ok || command != "df -h" {
		t.Fatalf("Select = (%q, %v), want (df -h, true)", command, ok)
	}
	if !strings.Contains(out.String(), "1. ls -la") {
		t.Fatalf("commands were not enumerated: %s", out.String())
	}
}

func TestSelectTreatsMalformedInputAsDeclined(t *testing.T) {
	tests := []string{"abc\n", "0\n", "9\n", "\n"}
	for _, input := range tests {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)

		_, ok, err := p.Select([]string{"ls -la", "df -h"})
		if err != nil {
			t.Fatalf("Select(%q) error: %v", strings.TrimSpace(input), err)
		}
		if ok {
			t.Fatalf("input %q should decline", strings.TrimSpace(input))
		}
	}
}

func TestSelectDeclinesConfirmationAfterSelection(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\nn\n"), &out)

	_, ok, err := p.Select([]string{"ls -la", "df -h"})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if ok {
		t.Fatal("declined confirmation should not proceed")
	}
}
