package workspace

import (
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expandMembers resolves member entries against dir into document paths.
// Glob entries are expanded in lexical order. Entries that name a
// directory resolve to the document inside it; entries that resolve to
// nothing are logged and dropped.
func (l *Loader) expandMembers(dir string, members []string) []string {
	var out []string
	for _, m := range members {
		if path.IsAbs(m) {
			l.Logger.Printf("member %s: absolute paths are not allowed", m)
			continue
		}
		p := path.Clean(path.Join(dir, strings.TrimPrefix(m, "./")))
		if !fs.ValidPath(p) {
			l.Logger.Printf("member %s: outside the workspace root", m)
			continue
		}

		candidates := []string{p}
		if isGlob(m) {
			if !doublestar.ValidatePattern(p) {
				l.Logger.Printf("member %s: invalid pattern", m)
				continue
			}
			matches, err := doublestar.Glob(l.FS, p)
			if err != nil {
				l.Logger.Printf("member %s: %v", m, err)
				continue
			}
			candidates = matches
		}

		found := false
		for _, c := range candidates {
			if doc, ok := l.memberDocument(c); ok {
				out = append(out, doc)
				found = true
			}
		}
		if !found {
			l.Logger.Printf("member %s: no document found", m)
		}
	}
	return out
}

// memberDocument maps a member path to a document path.
func (l *Loader) memberDocument(p string) (string, bool) {
	info, err := fs.Stat(l.FS, p)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return l.findInDir(p)
	}
	return p, true
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
