package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/tidwall/jsonc"

	"github.com/jeduden/denojsonlint/internal/config"
	"github.com/jeduden/denojsonlint/internal/log"
)

// ErrNotFound is returned when no configuration document exists at the
// requested location.
var ErrNotFound = errors.New("no deno.json or deno.jsonc found")

// Loader reads documents from FS.
type Loader struct {
	FS fs.FS
	// Base is prepended to document paths to form display names.
	Base string
	// Ignore holds glob patterns of member paths to skip, relative to
	// the root document's directory.
	Ignore []string
	// KnownRules, when set, is used to reject unknown rule IDs in lint
	// blocks.
	KnownRules []string
	Logger     *log.Logger
}

// header is the part of a document the loader decodes.
type header struct {
	Workspace json.RawMessage `json:"workspace"`
	Lint      json.RawMessage `json:"deno-json-lint"`
}

// Load reads the document at target and its workspace members. target
// is a file or a directory within FS; "" means the FS root. The root
// document comes first, then members in declaration order.
func (l *Loader) Load(target string) ([]*Document, error) {
	rootPath, err := l.resolve(target)
	if err != nil {
		return nil, err
	}

	root, members, err := l.read(rootPath, nil)
	if err != nil {
		return nil, err
	}
	docs := []*Document{root}
	if len(members) == 0 {
		return docs, nil
	}

	ignore, err := compileIgnore(l.Ignore)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{root.Path: true}
	for _, p := range l.expandMembers(path.Dir(root.Path), members) {
		if seen[p] {
			continue
		}
		seen[p] = true

		rel := relTo(path.Dir(root.Path), p)
		if matchAny(ignore, rel) {
			l.Logger.Printf("member %s: ignored", rel)
			continue
		}

		doc, _, err := l.read(p, root)
		if err != nil {
			var decodeErr *decodeError
			if errors.As(err, &decodeErr) {
				l.Logger.Printf("member %s: skipped: %v", rel, err)
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// resolve maps target to the path of a document.
func (l *Loader) resolve(target string) (string, error) {
	if target == "" {
		target = "."
	}
	target = path.Clean(filepath.ToSlash(target))
	if !fs.ValidPath(target) {
		return "", fmt.Errorf("invalid path %q", target)
	}

	info, err := fs.Stat(l.FS, target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", l.display(target), ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", l.display(target), err)
	}
	if !info.IsDir() {
		return target, nil
	}
	if p, ok := l.findInDir(target); ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: %w", l.display(target), ErrNotFound)
}

// findInDir returns the first default document name present in dir.
func (l *Loader) findInDir(dir string) (string, bool) {
	for _, name := range DefaultNames {
		p := path.Join(dir, name)
		if info, err := fs.Stat(l.FS, p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// decodeError marks a document whose header could not be decoded.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

// read loads one document. It returns the raw member entries declared
// by the document.
func (l *Loader) read(p string, parent *Document) (*Document, []string, error) {
	src, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", l.display(p), err)
	}
	doc := &Document{Path: p, Name: l.display(p), Source: src, Parent: parent}
	l.Logger.Printf("document: %s", doc.Name)

	var h header
	if err := json.Unmarshal(jsonc.ToJSON(src), &h); err != nil {
		err = &decodeError{fmt.Errorf("decoding %s: %w", doc.Name, err)}
		if parent != nil {
			return nil, nil, err
		}
		// An unreadable root is returned without config; the runner reports it.
		l.Logger.Printf("%v", err)
		return doc, nil, nil
	}

	cfg, err := config.ParseBlock(h.Lint)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", doc.Name, err)
	}
	if l.KnownRules != nil {
		if err := cfg.CheckRules(l.KnownRules); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", doc.Name, err)
		}
	}
	doc.Config = cfg

	if parent != nil {
		return doc, nil, nil
	}
	return doc, memberList(h.Workspace), nil
}

// memberList accepts a bare list or an object with a members list.
func memberList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var obj struct {
		Members []string `json:"members"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Members
	}
	return nil
}

func (l *Loader) display(p string) string {
	if l.Base == "" {
		return p
	}
	return filepath.Join(l.Base, filepath.FromSlash(p))
}

// relTo returns p relative to dir; both are clean FS paths.
func relTo(dir, p string) string {
	if dir == "." {
		return p
	}
	return strings.TrimPrefix(p, dir+"/")
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// matchAny reports whether the member path or its directory matches.
func matchAny(globs []glob.Glob, rel string) bool {
	for _, g := range globs {
		if g.Match(rel) || g.Match(path.Dir(rel)) {
			return true
		}
	}
	return false
}
