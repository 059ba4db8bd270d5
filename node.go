package huffcode

// Node is a node of a binary code tree. A well-formed node is either
// internal, with a zero child and a one child and no symbol, or a leaf
// carrying exactly one symbol. Nodes created unset (no children, no
// symbol) are the intermediate states of path construction and are
// invalid until they gain a symbol or both children.
//
// Every node is owned by its parent; only the root is owned by a
// CodeTree. There are no back pointers.
type Node struct {
	zero, one *Node
	sym       rune
	hasSym    bool
}

// NewNode returns an unset node.
func NewNode() *Node { return &Node{} }

// NewLeaf returns a leaf carrying c.
func NewLeaf(c rune) *Node { return &Node{sym: c, hasSym: true} }

// NewInternal returns an internal node with the given children.
func NewInternal(zero, one *Node) *Node { return &Node{zero: zero, one: one} }

// Zero returns the child followed on a 0 bit, or nil.
func (n *Node) Zero() *Node { return n.zero }

// One returns the child followed on a 1 bit, or nil.
func (n *Node) One() *Node { return n.one }

func (n *Node) SetZero(zero *Node) { n.zero = zero }
func (n *Node) SetOne(one *Node)   { n.one = one }

// Data returns the symbol carried by n, if any.
func (n *Node) Data() (rune, bool) { return n.sym, n.hasSym }

// SetData sets the symbol carried by n, replacing any previous one.
func (n *Node) SetData(c rune) { n.sym, n.hasSym = c, true }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.zero == nil && n.one == nil }

// IsValidNode checks n in isolation: a leaf must carry a symbol, an
// internal node must have both children and no symbol.
func (n *Node) IsValidNode() bool {
	if n.IsLeaf() {
		return n.hasSym
	}
	return n.zero != nil && n.one != nil && !n.hasSym
}

// IsValidTree checks n and everything below it: every leaf carries a
// symbol and every internal node has exactly two valid subtrees. A single
// unset node is not a valid tree.
func (n *Node) IsValidTree() bool {
	if n.IsLeaf() {
		return n.hasSym
	}
	return n.IsValidNode() && n.zero.IsValidTree() && n.one.IsValidTree()
}
