// Package rule defines lint rules as plain records and keeps the
// process-wide registry of built-in rules.
package rule

import (
	"slices"

	"github.com/jeduden/denojsonlint/internal/jsonc"
)

// Tag classifies a rule. Tags are informational only.
type Tag string

// Known tags.
const (
	TagRecommended  Tag = "recommended"
	TagSecurity     Tag = "security"
	TagPermissions  Tag = "permissions"
	TagDependencies Tag = "dependencies"
)

// Reporter records one finding. A zero node makes the finding apply to
// the whole document.
type Reporter func(message string, node jsonc.Node)

// Finding is a single report emitted by a rule during one invocation.
type Finding struct {
	Message string
	Node    jsonc.Node
}

// Rule is a stateless unit of analysis. Check is called once per path
// returned by Paths, with the node at that path or the zero Node when
// the path does not resolve. Check must only report through report.
type Rule struct {
	ID          string
	Description string
	Tags        []Tag
	// RootOnly rules are skipped for workspace member documents.
	RootOnly bool
	Paths    func() []jsonc.Path
	Check    func(report Reporter, path jsonc.Path, node jsonc.Node)
}

// HasTag reports whether r carries tag t.
func (r Rule) HasTag(t Tag) bool {
	return slices.Contains(r.Tags, t)
}
