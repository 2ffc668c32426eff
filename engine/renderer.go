package engine

import (
	"image"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

var whiteSubImage *ebiten.Image

// solidSource returns a 1x1 white source region, allocated on first use so
// importing the package never touches the graphics driver.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// maxBatchVertices keeps every DrawTriangles call within uint16 indices.
const maxBatchVertices = 65535 - 3

type triangle struct {
	x, y  [3]float32
	depth float32
	col   [4]float32
}

// Renderer draws a Scene into an offscreen image with flat Lambert shading
// and back-to-front triangle sorting. The offscreen image is (re)allocated on
// the first Render after a size change.
type Renderer struct {
	width, height int
	target        *ebiten.Image

	tris     []triangle
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

func (r *Renderer) SetSize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	if r.target != nil {
		r.target.Deallocate()
		r.target = nil
	}
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Image returns the last rendered frame, or nil before the first Render.
func (r *Renderer) Image() *ebiten.Image { return r.target }

func (r *Renderer) Render(scene *Scene, cam *Camera) {
	if scene == nil || cam == nil || r.width <= 0 || r.height <= 0 {
		return
	}
	if r.target == nil {
		r.target = ebiten.NewImage(r.width, r.height)
	}
	r.target.Fill(scene.Background)

	r.tris = r.collect(scene, cam, r.tris[:0])
	slices.SortFunc(r.tris, func(a, b triangle) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	r.draw()
}

func (r *Renderer) collect(scene *Scene, cam *Camera, out []triangle) []triangle {
	vp := cam.ViewProjection()
	scene.Root.Walk(func(n *Node, world mgl32.Mat4) {
		for _, m := range n.Meshes {
			out = r.collectMesh(scene, m, world, vp, cam.Near, out)
		}
	})
	return out
}

func (r *Renderer) collectMesh(scene *Scene, m *Mesh, world, vp mgl32.Mat4, near float32, out []triangle) []triangle {
	if m == nil {
		return out
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var wp [3]mgl32.Vec3
		valid := true
		for k := 0; k < 3; k++ {
			idx := m.Indices[i+k]
			if int(idx) >= len(m.Positions) {
				valid = false
				break
			}
			wp[k] = world.Mul4x1(m.Positions[idx].Vec4(1)).Vec3()
		}
		if !valid {
			continue
		}

		var t triangle
		for k := 0; k < 3; k++ {
			x, y, d, ok := Project(vp, wp[k], near, r.width, r.height)
			if !ok {
				valid = false
				break
			}
			t.x[k], t.y[k] = x, y
			t.depth += d / 3
		}
		if !valid {
			continue
		}
		t.col = shade(scene, m.Color, wp)
		out = append(out, t)
	}
	return out
}

// shade computes a two-sided Lambert colour for one world-space triangle.
func shade(scene *Scene, base color.RGBA, wp [3]mgl32.Vec3) [4]float32 {
	normal := wp[1].Sub(wp[0]).Cross(wp[2].Sub(wp[0]))
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}

	var lr, lg, lb float32
	for _, a := range scene.Ambient {
		lr += float32(a.Color.R) / 255 * a.Intensity
		lg += float32(a.Color.G) / 255 * a.Intensity
		lb += float32(a.Color.B) / 255 * a.Intensity
	}
	for _, d := range scene.Directional {
		k := math32.Abs(normal.Dot(d.Direction())) * d.Intensity
		lr += float32(d.Color.R) / 255 * k
		lg += float32(d.Color.G) / 255 * k
		lb += float32(d.Color.B) / 255 * k
	}
	return [4]float32{
		math32.Min(1, float32(base.R)/255*lr),
		math32.Min(1, float32(base.G)/255*lg),
		math32.Min(1, float32(base.B)/255*lb),
		float32(base.A) / 255,
	}
}

func (r *Renderer) draw() {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, t := range r.tris {
		if len(r.vertices) >= maxBatchVertices {
			r.flush()
		}
		base := uint16(len(r.vertices))
		for k := 0; k < 3; k++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   t.x[k],
				DstY:   t.y[k],
				SrcX:   1,
				SrcY:   1,
				ColorR: t.col[0],
				ColorG: t.col[1],
				ColorB: t.col[2],
				ColorA: t.col[3],
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush()
}

func (r *Renderer) flush() {
	if len(r.indices) == 0 {
		return
	}
	r.target.DrawTriangles(r.vertices, r.indices, solidSource(), &ebiten.DrawTrianglesOptions{})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
