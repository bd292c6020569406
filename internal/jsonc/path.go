package jsonc

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a segment selecting the object property named k.
func Key(k string) Segment { return Segment{key: k} }

// Index returns a segment selecting the i-th array element.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return strconv.Quote(s.key)
}

// Path identifies a location in the logical document, independent of
// how the tree is shaped.
type Path []Segment

// P builds a Path from strings (keys) and ints (indices). Any other
// element type is a programming error and panics.
func P(segments ...any) Path {
	p := make(Path, 0, len(segments))
	for _, s := range segments {
		switch v := s.(type) {
		case string:
			p = append(p, Key(v))
		case int:
			p = append(p, Index(v))
		default:
			panic(fmt.Sprintf("jsonc: invalid path segment %T", s))
		}
	}
	return p
}

// Key returns the canonical serialization of p. Equal paths built
// independently yield the same key.
func (p Path) Key() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (p Path) String() string { return p.Key() }

// Equal reports whether p and q select the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasSuffix reports whether the last segment of p is the key k.
func (p Path) HasSuffix(k string) bool {
	if len(p) == 0 {
		return false
	}
	last := p[len(p)-1]
	return !last.isIndex && last.key == k
}

// Find returns the node at path p, or the zero Node if any segment
// fails to resolve. It is safe on a nil Tree.
func (t *Tree) Find(p Path) Node {
	n := t.Root()
	for _, s := range p {
		if !n.Exists() {
			return Node{}
		}
		if s.isIndex {
			n = n.Index(s.index)
		} else {
			n = n.Get(s.key)
		}
	}
	return n
}
