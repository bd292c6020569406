package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/denojsonlint/internal/lint"
)

// JSONSchemaVersion is bumped whenever the shape of the JSON report
// changes incompatibly.
const JSONSchemaVersion = 1

// JSONFormatter writes a single JSON report object.
type JSONFormatter struct{}

type jsonReport struct {
	SchemaVersion int              `json:"schemaVersion"`
	Summary       jsonSummary      `json:"summary"`
	Diagnostics   []jsonDiagnostic `json:"diagnostics"`
}

type jsonSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// jsonDiagnostic leaves out line and column for findings about the
// whole document.
type jsonDiagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Format writes the report. Diagnostics is always an array, empty when
// the run was clean.
func (f *JSONFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	report := jsonReport{
		SchemaVersion: JSONSchemaVersion,
		Diagnostics:   make([]jsonDiagnostic, 0, len(diagnostics)),
	}
	for _, d := range diagnostics {
		switch d.Severity {
		case lint.Warning:
			report.Summary.Warnings++
		default:
			report.Summary.Errors++
		}
		report.Diagnostics = append(report.Diagnostics, jsonDiagnostic{
			File:     d.File,
			Line:     d.Line,
			Column:   d.Column,
			Rule:     d.RuleID,
			Severity: string(d.Severity),
			Message:  d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
