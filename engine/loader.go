package engine

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrUnsupportedFormat = errors.New("engine: unsupported model format")

var defaultMeshColor = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

// Asset is a loaded model: a root node ready to be added to a scene and the
// animation clips that target its nodes.
type Asset struct {
	Path  string
	Root  *Node
	Clips []*Clip
}

// Duration is the longest clip duration, or 0 without clips.
func (a *Asset) Duration() float64 {
	var d float64
	for _, c := range a.Clips {
		d = max(d, c.Duration)
	}
	return d
}

// GLTFLoader loads .glb and .gltf files relative to Root.
type GLTFLoader struct {
	Root string
}

func NewGLTFLoader(root string) *GLTFLoader {
	return &GLTFLoader{Root: root}
}

func (l *GLTFLoader) resolve(path string) string {
	if l.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, filepath.FromSlash(path))
}

func (l *GLTFLoader) Load(ctx context.Context, path string) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".glb" && ext != ".gltf" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	doc, err := gltf.Open(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	asset, err := buildAsset(doc)
	if err != nil {
		return nil, fmt.Errorf("engine: build %s: %w", path, err)
	}
	asset.Path = path
	return asset, nil
}

func buildAsset(doc *gltf.Document) (*Asset, error) {
	nodes := make([]*Node, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		n := NewNode(gn.Name)
		if m := mat4(gn.MatrixOrDefault()); m != mgl32.Ident4() {
			n.SetMatrix(m)
		} else {
			n.Position = vec3(gn.TranslationOrDefault())
			r := vec4(gn.RotationOrDefault())
			n.Rotation = mgl32.Quat{W: r.W(), V: r.Vec3()}
			n.Scale = vec3(gn.ScaleOrDefault())
		}
		if gn.Mesh != nil {
			meshes, err := readMeshes(doc, *gn.Mesh)
			if err != nil {
				return nil, err
			}
			n.Meshes = meshes
		}
		nodes[i] = n
	}
	for i, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c >= 0 && c < len(nodes) {
				nodes[i].Add(nodes[c])
			}
		}
	}

	root := NewNode("model")
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx >= 0 && sceneIdx < len(doc.Scenes) {
		if name := doc.Scenes[sceneIdx].Name; name != "" {
			root.Name = name
		}
		for _, idx := range doc.Scenes[sceneIdx].Nodes {
			if idx >= 0 && idx < len(nodes) {
				root.Add(nodes[idx])
			}
		}
	} else {
		for _, n := range nodes {
			if n.Parent() == nil {
				root.Add(n)
			}
		}
	}

	clips := make([]*Clip, 0, len(doc.Animations))
	for i, anim := range doc.Animations {
		clip, err := readClip(doc, anim, nodes)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		if clip.Name == "" {
			clip.Name = fmt.Sprintf("clip%d", i)
		}
		clips = append(clips, clip)
	}

	return &Asset{Root: root, Clips: clips}, nil
}

func readMeshes(doc *gltf.Document, meshIdx int) ([]*Mesh, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", meshIdx)
	}
	var out []*Mesh
	for pi, prim := range doc.Meshes[meshIdx].Primitives {
		posIdx, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("mesh %d primitive %d positions: %w", meshIdx, pi, err)
		}
		m := &Mesh{Color: defaultMeshColor}
		m.Positions = make([]mgl32.Vec3, len(positions))
		for i, p := range positions {
			m.Positions[i] = mgl32.Vec3{p[0], p[1], p[2]}
		}
		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d indices: %w", meshIdx, pi, err)
			}
			m.Indices = indices
		} else {
			m.Indices = make([]uint32, len(positions))
			for i := range m.Indices {
				m.Indices[i] = uint32(i)
			}
		}
		if prim.Material != nil && *prim.Material < len(doc.Materials) {
			if pbr := doc.Materials[*prim.Material].PBRMetallicRoughness; pbr != nil {
				m.Color = rgba(pbr.BaseColorFactorOrDefault())
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func readClip(doc *gltf.Document, anim *gltf.Animation, nodes []*Node) (*Clip, error) {
	var tracks []*Track
	for _, ch := range anim.Channels {
		if ch.Target.Node == nil || *ch.Target.Node >= len(nodes) || ch.Sampler >= len(anim.Samplers) {
			continue
		}
		var path TrackPath
		switch ch.Target.Path {
		case gltf.TRSTranslation:
			path = TrackTranslation
		case gltf.TRSRotation:
			path = TrackRotation
		case gltf.TRSScale:
			path = TrackScale
		default:
			// morph target weights are not animated
			continue
		}
		sampler := anim.Samplers[ch.Sampler]
		times, err := readTimes(doc, sampler.Input)
		if err != nil {
			return nil, err
		}
		values, err := readValues(doc, sampler.Output)
		if err != nil {
			return nil, err
		}
		interp := InterpolationLinear
		switch sampler.Interpolation {
		case gltf.InterpolationStep:
			interp = InterpolationStep
		case gltf.InterpolationCubicSpline:
			// keep the keyframe values, drop the tangents
			kept := make([]mgl32.Vec4, 0, len(values)/3)
			for i := 1; i < len(values); i += 3 {
				kept = append(kept, values[i])
			}
			values = kept
		}
		tracks = append(tracks, &Track{
			Target:        nodes[*ch.Target.Node],
			Path:          path,
			Times:         times,
			Values:        values,
			Interpolation: interp,
		})
	}
	return NewClip(anim.Name, tracks), nil
}

func readTimes(doc *gltf.Document, accessor int) ([]float32, error) {
	if accessor < 0 || accessor >= len(doc.Accessors) {
		return nil, fmt.Errorf("input accessor %d out of range", accessor)
	}
	data, err := modeler.ReadAccessor(doc, doc.Accessors[accessor], nil)
	if err != nil {
		return nil, fmt.Errorf("input accessor %d: %w", accessor, err)
	}
	times, ok := data.([]float32)
	if !ok {
		return nil, fmt.Errorf("input accessor %d: unexpected %T", accessor, data)
	}
	return times, nil
}

func readValues(doc *gltf.Document, accessor int) ([]mgl32.Vec4, error) {
	if accessor < 0 || accessor >= len(doc.Accessors) {
		return nil, fmt.Errorf("output accessor %d out of range", accessor)
	}
	data, err := modeler.ReadAccessor(doc, doc.Accessors[accessor], nil)
	if err != nil {
		return nil, fmt.Errorf("output accessor %d: %w", accessor, err)
	}
	switch v := data.(type) {
	case [][3]float32:
		out := make([]mgl32.Vec4, len(v))
		for i, x := range v {
			out[i] = mgl32.Vec4{x[0], x[1], x[2], 0}
		}
		return out, nil
	case [][4]float32:
		out := make([]mgl32.Vec4, len(v))
		for i, x := range v {
			out[i] = mgl32.Vec4(x)
		}
		return out, nil
	}
	return nil, fmt.Errorf("output accessor %d: unsupported %T", accessor, data)
}

type float interface{ ~float32 | ~float64 }

func vec3[T float](v [3]T) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func vec4[T float](v [4]T) mgl32.Vec4 {
	return mgl32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func mat4[T float](v [16]T) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := range v {
		m[i] = float32(v[i])
	}
	return m
}

func rgba[T float](v [4]T) color.RGBA {
	to8 := func(f T) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 0xff
		}
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{to8(v[0]), to8(v[1]), to8(v[2]), to8(v[3])}
}
