package render

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/platformer"
)

// Scene mirrors the core's entities as a node tree. It is fed scene
// commands and never reads the world directly.
type Scene struct {
	roots [2]*Node // indexed by platformer.Space
	nodes map[donburi.Entity]*Node

	// OnSpawn, if set, is called after a node is attached.
	OnSpawn func(*Node)
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		roots: [2]*Node{newRoot(platformer.SpaceScreen), newRoot(platformer.SpaceUI)},
		nodes: make(map[donburi.Entity]*Node),
	}
}

// Root returns the container of top-level nodes in space.
func (s *Scene) Root(space platformer.Space) *Node {
	return s.roots[space]
}

// Node returns the node mirroring e.
func (s *Scene) Node(e donburi.Entity) (*Node, bool) {
	n, ok := s.nodes[e]
	return n, ok
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Apply performs one scene mutation. Commands for unknown entities are
// ignored; a spawn whose parent is unknown attaches to its space's root.
func (s *Scene) Apply(cmd platformer.SceneCommand) {
	if cmd.Op == platformer.SceneSpawn {
		s.spawn(cmd)
		return
	}
	n, ok := s.nodes[cmd.Entity]
	if !ok {
		return
	}
	switch cmd.Op {
	case platformer.SceneRemove:
		s.forget(n)
		n.Dispose()
	case platformer.SceneRecolor:
		n.Color = cmd.Color
	case platformer.SceneReposition:
		n.Rect = cmd.Rect
	case platformer.SceneSetVisible:
		n.Visible = cmd.Visible
	case platformer.SceneSetText:
		n.Text = cmd.Text
	}
}

func (s *Scene) spawn(cmd platformer.SceneCommand) {
	if old, ok := s.nodes[cmd.Entity]; ok {
		s.forget(old)
		old.Dispose()
	}
	n := newNode(cmd)
	parent, ok := s.nodes[cmd.Parent]
	if cmd.Parent == donburi.Null || !ok {
		parent = s.roots[spaceIndex(cmd.Space)]
	}
	parent.AddChild(n)
	s.nodes[cmd.Entity] = n
	if s.OnSpawn != nil {
		s.OnSpawn(n)
	}
}

// forget drops n and its descendants from the entity index.
func (s *Scene) forget(n *Node) {
	delete(s.nodes, n.Entity)
	for _, c := range n.children {
		s.forget(c)
	}
}

// Clear disposes every node.
func (s *Scene) Clear() {
	for _, r := range s.roots {
		for len(r.children) > 0 {
			r.children[len(r.children)-1].Dispose()
		}
	}
	s.nodes = make(map[donburi.Entity]*Node)
}

func spaceIndex(sp platformer.Space) platformer.Space {
	if int(sp) >= 2 {
		return platformer.SpaceScreen
	}
	return sp
}

// visit is called for every visible node in paint order with its box in the
// y-up viewport frame and its accumulated alpha.
type visit func(n *Node, b platformer.Bounds, alpha float64)

// Walk visits the visible nodes of a viewport of size vw x vh, screen space
// first, then UI space, each in ascending Z. Children paint over their parent.
func (s *Scene) Walk(vw, vh float64, fn visit) {
	s.walk(s.roots[platformer.SpaceScreen], 0, 0, 1, fn)
	s.walk(s.roots[platformer.SpaceUI], vw/2, vh/2, 1, fn)
}

func (s *Scene) walk(n *Node, ox, oy, alpha float64, fn visit) {
	for _, c := range n.sorted() {
		if !c.Visible {
			continue
		}
		b := c.Rect.Bounds()
		b.Left += ox
		b.Right += ox
		b.Bottom += oy
		b.Top += oy
		a := alpha * c.Alpha
		fn(c, b, a)
		s.walk(c, b.Left, b.Bottom, a, fn)
	}
}
