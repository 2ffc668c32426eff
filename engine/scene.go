package engine

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type AmbientLight struct {
	Color     color.RGBA
	Intensity float32
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float32
	Position  mgl32.Vec3
}

// Direction returns the unit vector pointing from the lit surface towards the
// light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// Scene is a root node plus the lighting and clear colour used to draw it.
type Scene struct {
	Background  color.RGBA
	Root        *Node
	Ambient     []AmbientLight
	Directional []DirectionalLight
}

func NewScene() *Scene {
	return &Scene{
		Background: color.RGBA{0, 0, 0, 0xff},
		Root:       NewNode("scene"),
	}
}

func (s *Scene) Add(nodes ...*Node) {
	s.Root.Add(nodes...)
}

func (s *Scene) Remove(n *Node) bool {
	if n == nil || n.parent == nil {
		return false
	}
	return n.parent.Remove(n)
}

func (s *Scene) AddAmbient(c color.RGBA, intensity float32) {
	s.Ambient = append(s.Ambient, AmbientLight{Color: c, Intensity: intensity})
}

func (s *Scene) AddDirectional(c color.RGBA, intensity float32, position mgl32.Vec3) {
	s.Directional = append(s.Directional, DirectionalLight{Color: c, Intensity: intensity, Position: position})
}
