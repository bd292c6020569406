// Package jsonc builds an immutable, offset-annotated syntax tree for JSON
// documents that may contain comments and trailing commas.
package jsonc

import (
	"encoding/json"

	"github.com/tailscale/hujson"
)

// Kind is the syntactic kind of a node.
type Kind uint8

// Node kinds.
const (
	Invalid Kind = iota
	Object
	Array
	Property
	String
	Number
	Boolean
	Null
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Object:   "object",
	Array:    "array",
	Property: "property",
	String:   "string",
	Number:   "number",
	Boolean:  "boolean",
	Null:     "null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// node is one arena slot. Children are arena indices.
type node struct {
	kind     Kind
	offset   int
	length   int
	text     string // unquoted string value or raw number text
	truth    bool
	children []int
}

// Tree is a parsed document. Nodes are stored in a flat arena and the
// root is always at index 0. A Tree is never modified after Parse returns.
type Tree struct {
	nodes []node
}

// Parse builds a tree from src. It returns nil when src is not a
// well-formed JSON document (comments and trailing commas are allowed).
func Parse(src []byte) *Tree {
	v, err := hujson.Parse(src)
	if err != nil {
		return nil
	}
	t := &Tree{}
	t.add(v)
	return t
}

// Root returns the root value node.
func (t *Tree) Root() Node {
	if t == nil || len(t.nodes) == 0 {
		return Node{}
	}
	return Node{tree: t, id: 0}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

func (t *Tree) alloc(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// add appends v and its descendants in pre-order and returns v's index.
func (t *Tree) add(v hujson.Value) int {
	n := node{offset: v.StartOffset, length: v.EndOffset - v.StartOffset}
	switch val := v.Value.(type) {
	case *hujson.Object:
		n.kind = Object
		id := t.alloc(n)
		children := make([]int, 0, len(val.Members))
		for _, m := range val.Members {
			children = append(children, t.addMember(m))
		}
		t.nodes[id].children = children
		return id
	case *hujson.Array:
		n.kind = Array
		id := t.alloc(n)
		children := make([]int, 0, len(val.Elements))
		for _, e := range val.Elements {
			children = append(children, t.add(hujson.Value(e)))
		}
		t.nodes[id].children = children
		return id
	case hujson.Literal:
		switch val.Kind() {
		case '"':
			n.kind = String
			_ = json.Unmarshal(val, &n.text)
		case '0':
			n.kind = Number
			n.text = string(val)
		case 't':
			n.kind = Boolean
			n.truth = true
		case 'f':
			n.kind = Boolean
		default:
			n.kind = Null
		}
		return t.alloc(n)
	}
	return t.alloc(n)
}

func (t *Tree) addMember(m hujson.ObjectMember) int {
	end := m.Value.EndOffset
	id := t.alloc(node{
		kind:   Property,
		offset: m.Name.StartOffset,
		length: end - m.Name.StartOffset,
	})
	key := t.add(m.Name)
	value := t.add(m.Value)
	t.nodes[id].children = []int{key, value}
	return id
}
