package output

import (
	"fmt"
	"io"

	"github.com/jeduden/denojsonlint/internal/lint"
)

const (
	ansiReset   = "\033[0m"
	ansiBoldRed = "\033[1;31m"
	ansiYellow  = "\033[33m"
)

// TextFormatter outputs diagnostics in human-readable text format.
// When Color is true, errors are printed in bold red and warnings in
// yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each diagnostic as a single line in the pattern:
// file[:line:col]: [rule] message
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	for _, d := range diagnostics {
		line := Line(d)
		if f.Color {
			color := ansiBoldRed
			if d.Severity == lint.Warning {
				color = ansiYellow
			}
			line = color + line + ansiReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Line renders d without color.
func Line(d lint.Diagnostic) string {
	loc := d.File
	if d.HasLocation() {
		loc = fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
	return fmt.Sprintf("%s: [%s] %s", loc, d.RuleID, d.Message)
}
