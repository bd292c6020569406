package jsonc

// Node is a handle to a node in a Tree. The zero Node stands for an
// absent value; every accessor is safe to call on it.
type Node struct {
	tree *Tree
	id   int
}

// Member is one property of an object node.
type Member struct {
	Key   string
	Name  Node // the key string node
	Value Node
}

// Exists reports whether n refers to a node.
func (n Node) Exists() bool { return n.tree != nil }

func (n Node) raw() *node {
	if n.tree == nil {
		return nil
	}
	return &n.tree.nodes[n.id]
}

// Kind returns the node kind, or Invalid for the zero Node.
func (n Node) Kind() Kind {
	if r := n.raw(); r != nil {
		return r.kind
	}
	return Invalid
}

// Offset returns the byte offset of the node's first byte, or -1.
func (n Node) Offset() int {
	if r := n.raw(); r != nil {
		return r.offset
	}
	return -1
}

// Len returns the length of the node's source text in bytes.
func (n Node) Len() int {
	if r := n.raw(); r != nil {
		return r.length
	}
	return 0
}

// Children returns the child nodes. See Kind for their meaning.
func (n Node) Children() []Node {
	r := n.raw()
	if r == nil || len(r.children) == 0 {
		return nil
	}
	out := make([]Node, len(r.children))
	for i, c := range r.children {
		out[i] = Node{tree: n.tree, id: c}
	}
	return out
}

// Bool returns the value of a boolean node.
func (n Node) Bool() (value, ok bool) {
	r := n.raw()
	if r == nil || r.kind != Boolean {
		return false, false
	}
	return r.truth, true
}

// IsTrue reports whether n is the literal true.
func (n Node) IsTrue() bool {
	v, ok := n.Bool()
	return ok && v
}

// IsFalse reports whether n is the literal false.
func (n Node) IsFalse() bool {
	v, ok := n.Bool()
	return ok && !v
}

// Str returns the unquoted value of a string node.
func (n Node) Str() (string, bool) {
	r := n.raw()
	if r == nil || r.kind != String {
		return "", false
	}
	return r.text, true
}

// Members returns the properties of an object node in source order.
func (n Node) Members() []Member {
	r := n.raw()
	if r == nil || r.kind != Object {
		return nil
	}
	out := make([]Member, 0, len(r.children))
	for _, c := range r.children {
		prop := n.tree.nodes[c]
		if len(prop.children) != 2 {
			continue
		}
		name := Node{tree: n.tree, id: prop.children[0]}
		key, _ := name.Str()
		out = append(out, Member{
			Key:   key,
			Name:  name,
			Value: Node{tree: n.tree, id: prop.children[1]},
		})
	}
	return out
}

// Get returns the value of the first property named key, or the zero
// Node when n is not an object or has no such property.
func (n Node) Get(key string) Node {
	r := n.raw()
	if r == nil || r.kind != Object {
		return Node{}
	}
	for _, c := range r.children {
		prop := n.tree.nodes[c]
		if len(prop.children) != 2 {
			continue
		}
		if k := n.tree.nodes[prop.children[0]]; k.kind == String && k.text == key {
			return Node{tree: n.tree, id: prop.children[1]}
		}
	}
	return Node{}
}

// Index returns the i-th element of an array node.
func (n Node) Index(i int) Node {
	r := n.raw()
	if r == nil || r.kind != Array || i < 0 || i >= len(r.children) {
		return Node{}
	}
	return Node{tree: n.tree, id: r.children[i]}
}

// Elements returns the elements of an array node.
func (n Node) Elements() []Node {
	if n.Kind() != Array {
		return nil
	}
	return n.Children()
}
