package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jeduden/denojsonlint/internal/lint"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	toolName     = "denojsonlint"
	toolURI      = "https://github.com/jeduden/denojsonlint"
)

// SARIFFormatter outputs diagnostics as a SARIF 2.1.0 log with one run.
type SARIFFormatter struct{}

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Help sarifMessage `json:"help"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           *sarifRegion  `json:"region,omitempty"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

// Format writes the diagnostics as an indented SARIF document. Rules are
// listed in order of first appearance; document-level diagnostics have
// no region.
func (f *SARIFFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	rules := []sarifRule{}
	seen := make(map[string]bool)
	results := make([]sarifResult, 0, len(diagnostics))

	for _, d := range diagnostics {
		if !seen[d.RuleID] {
			seen[d.RuleID] = true
			rules = append(rules, sarifRule{
				ID:   d.RuleID,
				Name: d.RuleID,
				Help: sarifMessage{Text: d.Message},
			})
		}

		loc := sarifPhysicalLocation{
			ArtifactLocation: sarifArtifact{URI: filepath.ToSlash(d.File)},
		}
		if d.HasLocation() {
			loc.Region = &sarifRegion{StartLine: d.Line, StartColumn: d.Column}
		}
		results = append(results, sarifResult{
			RuleID:    d.RuleID,
			Level:     sarifLevel(d.Severity),
			Message:   sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{PhysicalLocation: loc}},
		})
	}

	doc := sarifLog{
		Version: sarifVersion,
		Schema:  sarifSchema,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           toolName,
				InformationURI: toolURI,
				Rules:          rules,
			}},
			Results: results,
		}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", err)
	}
	return nil
}

func sarifLevel(s lint.Severity) string {
	if s == lint.Warning {
		return "warning"
	}
	return "error"
}
