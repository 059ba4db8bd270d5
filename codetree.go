package huffcode

import "strings"

// CodeTree decodes bit sequences produced from a CodeBook. Root-to-leaf
// paths spell the bit sequences of symbols; leaves carry the symbols.
type CodeTree struct {
	root *Node
}

// NewCodeTree wraps an existing root node. The tree takes ownership of
// the root and everything below it.
func NewCodeTree(root *Node) *CodeTree { return &CodeTree{root: root} }

// NewCodeTreeFromBook builds a tree by inserting every (symbol, sequence)
// pair stored in book. Construction never fails: a book whose codes
// collide or share prefixes produces a tree that IsValid rejects, or one
// where the last write won if the collisions happen to line up. Validity
// is checked on demand, not here.
func NewCodeTreeFromBook(book *CodeBook) *CodeTree {
	t := &CodeTree{root: NewNode()}
	for c := range book.Symbols() {
		seq, _ := book.Sequence(c)
		t.Put(seq, c)
	}
	return t
}

// Put records c at the end of the path spelled by seq, creating unset
// intermediate nodes on demand. A symbol already present at the path's
// end is silently overwritten.
func (t *CodeTree) Put(seq *BitSequence, c rune) {
	node := t.root
	for bit := range seq.Bits() {
		var next *Node
		if bit {
			next = node.One()
			if next == nil {
				next = NewNode()
				node.SetOne(next)
			}
		} else {
			next = node.Zero()
			if next == nil {
				next = NewNode()
				node.SetZero(next)
			}
		}
		node = next
	}
	node.SetData(c)
}

// IsValid reports whether the tree is a well-formed code tree. Must hold
// before Decode can produce a result.
func (t *CodeTree) IsValid() bool { return t.root.IsValidTree() }

// Decode translates seq back into text, walking the tree one bit at a
// time and emitting a symbol each time a leaf is reached. It returns
// false when the tree is not valid; it never partially decodes. Trailing
// bits that stop mid-code are dropped. An empty sequence decodes to "".
func (t *CodeTree) Decode(seq *BitSequence) (string, bool) {
	if !t.IsValid() {
		return "", false
	}
	var b strings.Builder
	node := t.root
	for bit := range seq.Bits() {
		if bit {
			node = node.One()
		} else {
			node = node.Zero()
		}
		if node.IsLeaf() {
			c, _ := node.Data()
			b.WriteRune(c)
			node = t.root
		}
	}
	return b.String(), true
}
