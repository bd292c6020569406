// Package workspace reads a root configuration document and the workspace
// members it declares.
package workspace

import (
	"github.com/jeduden/denojsonlint/internal/config"
)

// DefaultNames are the document names looked up in a directory, in order.
var DefaultNames = []string{"deno.json", "deno.jsonc"}

// Document is one configuration document of a workspace.
type Document struct {
	// Path is the slash-separated path within the loader's file system.
	Path string
	// Name is the path shown to users.
	Name   string
	Source []byte
	// Config is the document's own lint block, or nil.
	Config *config.Config
	// Parent is the workspace root for members and nil for the root.
	Parent *Document
}

// IsRoot reports whether d is the workspace root.
func (d *Document) IsRoot() bool { return d.Parent == nil }

// Effective returns the lint configuration that applies to d: its own
// block merged over those of its ancestors.
func (d *Document) Effective() *config.Config {
	if d.Parent == nil {
		return d.Config
	}
	return config.Merge(d.Parent.Effective(), d.Config)
}
