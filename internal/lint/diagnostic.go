package lint

import "sort"

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warn"
)

// Diagnostic represents a single lint finding. Line and Column are
// 1-based; a zero Line means the finding applies to the whole document.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	RuleID   string
	Severity Severity
	Message  string
}

// HasLocation reports whether d points at a position in the source.
func (d Diagnostic) HasLocation() bool {
	return d.Line > 0
}

// Less orders located diagnostics before unlocated ones; located ones
// by line, column, then rule ID; unlocated ones by rule ID.
func Less(a, b Diagnostic) bool {
	if a.HasLocation() != b.HasLocation() {
		return a.HasLocation()
	}
	if a.HasLocation() {
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
	}
	return a.RuleID < b.RuleID
}

// Sort orders diagnostics in place according to Less. Diagnostics that
// compare equal keep their reporting order.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		return Less(diags[i], diags[j])
	})
}
