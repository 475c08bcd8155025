package render

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/platformer"
)

// Node is the retained drawable of one scene entity. A single flat struct
// is used for every node kind.
type Node struct {
	// Identity
	Entity donburi.Entity
	Name   string
	Kind   platformer.NodeKind
	Space  platformer.Space

	// Hierarchy
	Parent   *Node
	children []*Node

	// Placement in the parent's frame (y-up, origin at the parent's
	// bottom-left corner; the viewport root for top-level nodes).
	Rect platformer.Rect
	Z    float64

	// Appearance
	Color   platformer.Color
	Alpha   float64
	Visible bool

	// Text fields (NodeLabel, NodeButton, NodeText)
	Text      string
	Font      platformer.Font
	TextColor platformer.Color
	Frame     platformer.Color

	// Internal
	root           bool
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for Z-sorted traversal order
}

// newRoot creates the container every top-level node of space hangs from.
func newRoot(space platformer.Space) *Node {
	return &Node{
		Name:           "root",
		Space:          space,
		Alpha:          1,
		Visible:        true,
		root:           true,
		childrenSorted: true,
	}
}

// newNode creates a detached node from a spawn command.
func newNode(cmd platformer.SceneCommand) *Node {
	return &Node{
		Entity:         cmd.Entity,
		Name:           cmd.Name,
		Kind:           cmd.Kind,
		Space:          cmd.Space,
		Rect:           cmd.Rect,
		Z:              cmd.Z,
		Color:          cmd.Color,
		Alpha:          1,
		Visible:        cmd.Visible,
		Text:           cmd.Text,
		Font:           cmd.Font,
		TextColor:      cmd.TextColor,
		Frame:          cmd.Frame,
		childrenSorted: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("render: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("render: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("render: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZ sets the node's Z and marks the parent's children as unsorted.
func (n *Node) SetZ(z float64) {
	if n.Z == z {
		return
	}
	n.Z = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Traversal ---

// sorted returns the children in ascending Z, ties in insertion order.
func (n *Node) sorted() []*Node {
	if !n.childrenSorted {
		n.rebuildSortedChildren()
	}
	return n.sortedChildren
}

// rebuildSortedChildren uses a stable insertion sort; children are few and
// nearly sorted.
func (n *Node) rebuildSortedChildren() {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].Z > key.Z {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
