package lint

import (
	"github.com/jeduden/denojsonlint/internal/jsonc"
)

// File holds a parsed configuration document and its source.
type File struct {
	Path   string
	Source []byte
	// Tree is nil when Source is not a well-formed document.
	Tree  *jsonc.Tree
	lines *LineIndex
}

// NewFile parses source and returns a File. A document that cannot be
// parsed still yields a File with a nil Tree.
func NewFile(path string, source []byte) *File {
	return &File{
		Path:   path,
		Source: source,
		Tree:   jsonc.Parse(source),
		lines:  NewLineIndex(source),
	}
}

// Position returns the 1-based line and column at which n starts, or
// zeros when n is absent.
func (f *File) Position(n jsonc.Node) (line, column int) {
	if !n.Exists() {
		return 0, 0
	}
	return f.lines.Position(n.Offset())
}

