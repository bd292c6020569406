package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jeduden/denojsonlint/internal/lint"
)

// Level is the configured level of a rule.
type Level string

// Rule levels.
const (
	Off   Level = "off"
	Warn  Level = "warn"
	Error Level = "error"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case Off, Warn, Error:
		return true
	}
	return false
}

// UnmarshalYAML rejects unknown levels.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("rule level must be a string: %w", err)
	}
	if !Level(s).Valid() {
		return fmt.Errorf("line %d: invalid rule level %q (want off, warn or error)", value.Line, s)
	}
	*l = Level(s)
	return nil
}

// Config is the lint configuration. It is read from the document's
// "deno-json-lint" block or from a YAML file.
type Config struct {
	Rules map[string]Level `json:"rules,omitempty" yaml:"rules,omitempty"`
	// Ignore holds glob patterns of workspace member paths to skip. It
	// is only read from the YAML file.
	Ignore []string `json:"-" yaml:"ignore,omitempty"`
}

// Level returns the configured level for a rule, if any. It is safe on
// a nil Config.
func (c *Config) Level(id string) (Level, bool) {
	if c == nil {
		return "", false
	}
	l, ok := c.Rules[id]
	return l, ok
}

// IsOff reports whether the rule is explicitly turned off.
func (c *Config) IsOff(id string) bool {
	l, ok := c.Level(id)
	return ok && l == Off
}

// Severity returns the severity of diagnostics from the given rule:
// warn only when the rule is explicitly set to "warn", error otherwise.
func (c *Config) Severity(id string) lint.Severity {
	if l, ok := c.Level(id); ok && l == Warn {
		return lint.Warning
	}
	return lint.Error
}
