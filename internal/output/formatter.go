// Package output renders diagnostics for people and tools.
package output

import (
	"fmt"
	"io"

	"github.com/jeduden/denojsonlint/internal/lint"
)

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "json", "sarif"}

// New returns the formatter registered under name. color only affects
// the text format.
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "text", "":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "sarif":
		return &SARIFFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want text, json or sarif)", name)
}
