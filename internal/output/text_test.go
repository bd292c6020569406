package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeduden/denojsonlint/internal/lint"
)

var lockDiag = lint.Diagnostic{
	File:     "deno.json",
	Line:     2,
	Column:   11,
	RuleID:   "require-lockfile",
	Severity: lint.Error,
	Message:  "A lockfile should be enabled",
}

var ageDiag = lint.Diagnostic{
	File:     "deno.json",
	RuleID:   "require-minimum-dependency-age",
	Severity: lint.Warning,
	Message:  "`minimumDependencyAge` should be configured",
}

func TestTextFormatter_SingleDiagnostic(t *testing.T) {
	f := &TextFormatter{Color: false}
	var buf bytes.Buffer

	err := f.Format(&buf, []lint.Diagnostic{lockDiag})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "deno.json:2:11: [require-lockfile] A lockfile should be enabled\n"
	if buf.String() != expected {
		t.Errorf("got %q, want %q", buf.String(), expected)
	}
}

func TestTextFormatter_UnlocatedDiagnostic(t *testing.T) {
	f := &TextFormatter{Color: false}
	var buf bytes.Buffer

	if err := f.Format(&buf, []lint.Diagnostic{lockDiag, ageDiag}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	expected := "deno.json: [require-minimum-dependency-age] `minimumDependencyAge` should be configured"
	if lines[1] != expected {
		t.Errorf("line 2: got %q, want %q", lines[1], expected)
	}
}

func TestTextFormatter_WithColor(t *testing.T) {
	f := &TextFormatter{Color: true}
	var buf bytes.Buffer

	if err := f.Format(&buf, []lint.Diagnostic{lockDiag, ageDiag}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\033[1;31mdeno.json:2:11: [require-lockfile] A lockfile should be enabled\033[0m\n" +
		"\033[33mdeno.json: [require-minimum-dependency-age] `minimumDependencyAge` should be configured\033[0m\n"
	if buf.String() != expected {
		t.Errorf("got %q, want %q", buf.String(), expected)
	}
}

func TestTextFormatter_WithoutColor(t *testing.T) {
	f := &TextFormatter{Color: false}
	var buf bytes.Buffer

	if err := f.Format(&buf, []lint.Diagnostic{lockDiag, ageDiag}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no ANSI escape sequences in output, but found some")
	}
}

func TestTextFormatter_EmptyDiagnostics(t *testing.T) {
	f := &TextFormatter{Color: false}
	var buf bytes.Buffer

	err := f.Format(&buf, []lint.Diagnostic{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "" {
		t.Errorf("expected empty output for no diagnostics, got %q", buf.String())
	}
}

func TestNew(t *testing.T) {
	for _, name := range Formats {
		if _, err := New(name, false); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if f, _ := New("", true); !f.(*TextFormatter).Color {
		t.Error("default format should be colored text")
	}
	if _, err := New("xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatters_ImplementFormatter(t *testing.T) {
	var _ Formatter = &TextFormatter{}
	var _ Formatter = &JSONFormatter{}
	var _ Formatter = &SARIFFormatter{}
}
