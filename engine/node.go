package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is an element of the scene graph. Its local transform is either a
// translation/rotation/scale triple or, for imported nodes that carry one, a
// fixed matrix.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Meshes   []*Mesh
	Visible  bool

	matrix   *mgl32.Mat4
	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Visible:  true,
	}
}

// NewMeshNode wraps a single mesh in a node.
func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	if mesh != nil {
		n.Meshes = append(n.Meshes, mesh)
	}
	return n
}

// Add reparents children under n.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n and reports whether it was a child.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	return append(out, n.children...)
}

// SetMatrix pins the local transform to m. TRS fields are ignored afterwards.
func (n *Node) SetMatrix(m mgl32.Mat4) {
	n.matrix = &m
}

// SetRotationY replaces the rotation with a rotation of angle radians about +Y.
func (n *Node) SetRotationY(angle float32) {
	n.Rotation = mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
}

// SetRotationX replaces the rotation with a rotation of angle radians about +X.
func (n *Node) SetRotationX(angle float32) {
	n.Rotation = mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0})
}

func (n *Node) LocalMatrix() mgl32.Mat4 {
	if n.matrix != nil {
		return *n.matrix
	}
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(n.Rotation.Normalize().Mat4()).Mul4(s)
}

func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// Walk visits n and its visible descendants depth-first with their world
// matrices. Invisible nodes hide their whole subtree.
func (n *Node) Walk(fn func(node *Node, world mgl32.Mat4)) {
	var parentWorld mgl32.Mat4
	if n.parent != nil {
		parentWorld = n.parent.WorldMatrix()
	} else {
		parentWorld = mgl32.Ident4()
	}
	n.walk(parentWorld, fn)
}

func (n *Node) walk(parentWorld mgl32.Mat4, fn func(node *Node, world mgl32.Mat4)) {
	if !n.Visible {
		return
	}
	world := parentWorld.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Find returns the first node named name in n's subtree.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
