// Package sgf reads and writes SGF (Smart Game Format) game records.
package sgf

// Value is the value of one property: a single string, or a list of strings
// for the multi-value identities.
type Value struct {
	items []string
	list  bool
}

// Single is a one-item value.
func Single(s string) Value {
	return Value{items: []string{s}}
}

// List is a multi-item value; it stays a list even with one item.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...), list: true}
}

// IsList reports whether v was built as a list.
func (v Value) IsList() bool { return v.list }

// String returns the single value, or the first entry of a list.
func (v Value) String() string {
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// Items returns the bracket groups in order. A single value yields one item.
func (v Value) Items() []string {
	return append([]string(nil), v.items...)
}

// Equal compares kind and items.
func (v Value) Equal(o Value) bool {
	if v.list != o.list || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Property is one identity with its value, identity case kept as written.
type Property struct {
	ID    string
	Value Value
}

// Node is one ';' record of a game tree.
type Node struct {
	props    []Property
	index    map[string]int
	children []*Node
}

func newNode() *Node {
	return &Node{index: make(map[string]int)}
}

// set overwrites an existing identity in place, otherwise appends.
func (n *Node) set(id string, v Value) {
	if i, ok := n.index[id]; ok {
		n.props[i].Value = v
		return
	}
	n.index[id] = len(n.props)
	n.props = append(n.props, Property{ID: id, Value: v})
}

func (n *Node) addChild(c *Node) {
	n.children = append(n.children, c)
}

// Properties returns the properties in insertion order.
func (n *Node) Properties() []Property {
	return append([]Property(nil), n.props...)
}

// Get returns the value stored under the exact identity id.
func (n *Node) Get(id string) (Value, bool) {
	i, ok := n.index[id]
	if !ok {
		return Value{}, false
	}
	return n.props[i].Value, true
}

// Children returns the variations in order, main line first.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Equal compares properties in order and children recursively.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if len(n.props) != len(o.props) || len(n.children) != len(o.children) {
		return false
	}
	for i, p := range n.props {
		if p.ID != o.props[i].ID || !p.Value.Equal(o.props[i].Value) {
			return false
		}
	}
	for i, c := range n.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// Tree is one top-level '(...)' group.
type Tree struct {
	Root *Node
}

// Equal compares the trees from their roots.
func (t *Tree) Equal(o *Tree) bool {
	return t.Root.Equal(o.Root)
}

// Walk visits nodes depth first, parents before children. depth counts
// branch blocks, matching the writer's indentation. Returning false skips
// the node's descendants.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if len(n.children) == 1 {
		walk(n.children[0], depth, fn)
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}

// MainLine follows the first child from the root.
func (t *Tree) MainLine() []*Node {
	var line []*Node
	for n := t.Root; n != nil; {
		line = append(line, n)
		if len(n.children) == 0 {
			break
		}
		n = n.children[0]
	}
	return line
}

// Collection is the ordered list of game trees of one SGF text.
type Collection struct {
	Trees []*Tree
}

// Equal compares the trees pairwise in order.
func (c *Collection) Equal(o *Collection) bool {
	if len(c.Trees) != len(o.Trees) {
		return false
	}
	for i, t := range c.Trees {
		if !t.Equal(o.Trees[i]) {
			return false
		}
	}
	return true
}
