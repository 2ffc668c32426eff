package engine

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list with a single flat colour.
type Mesh struct {
	Positions []mgl32.Vec3
	Indices   []uint32
	Color     color.RGBA
}

func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// NewBox builds an axis-aligned box centred on the origin.
func NewBox(width, height, depth float32, c color.RGBA) *Mesh {
	x, y, z := width/2, height/2, depth/2
	return &Mesh{
		Positions: []mgl32.Vec3{
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			5, 4, 7, 5, 7, 6, // back
			4, 0, 3, 4, 3, 7, // left
			1, 5, 6, 1, 6, 2, // right
			3, 2, 6, 3, 6, 7, // top
			4, 5, 1, 4, 1, 0, // bottom
		},
		Color: c,
	}
}

// NewPlane builds a width x height plane in the XY plane, split into
// segments x segments quads so depth sorting stays stable on large floors.
func NewPlane(width, height float32, segments int, col color.RGBA) *Mesh {
	if segments < 1 {
		segments = 1
	}
	m := &Mesh{Color: col}
	stride := segments + 1
	for iy := 0; iy <= segments; iy++ {
		for ix := 0; ix <= segments; ix++ {
			px := -width/2 + width*float32(ix)/float32(segments)
			py := height/2 - height*float32(iy)/float32(segments)
			m.Positions = append(m.Positions, mgl32.Vec3{px, py, 0})
		}
	}
	for iy := 0; iy < segments; iy++ {
		for ix := 0; ix < segments; ix++ {
			a := uint32(iy*stride + ix)
			b := uint32((iy+1)*stride + ix)
			c := b + 1
			d := a + 1
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// ParseHexColor parses a colour in the form #rrggbb. Unparseable input
// yields opaque grey.
func ParseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x80, 0x80, 0x80
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
