package engine

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

type TrackPath int

const (
	TrackTranslation TrackPath = iota
	TrackRotation
	TrackScale
)

type Interpolation int

const (
	InterpolationLinear Interpolation = iota
	InterpolationStep
)

// Track animates one transform property of one node. Values hold xyz for
// translation and scale, and an xyzw quaternion for rotation.
type Track struct {
	Target        *Node
	Path          TrackPath
	Times         []float32
	Values        []mgl32.Vec4
	Interpolation Interpolation
}

// Duration is the time of the last keyframe.
func (tr *Track) Duration() float32 {
	if tr == nil || len(tr.Times) == 0 {
		return 0
	}
	return tr.Times[len(tr.Times)-1]
}

// Sample returns the track value at time t, holding the first and last
// keyframes outside the keyed range.
func (tr *Track) Sample(t float32) mgl32.Vec4 {
	n := min(len(tr.Times), len(tr.Values))
	if n == 0 {
		return mgl32.Vec4{}
	}
	i := sort.Search(n, func(i int) bool { return tr.Times[i] > t })
	if i == 0 {
		return tr.Values[0]
	}
	if i >= n {
		return tr.Values[n-1]
	}
	k := i - 1
	if tr.Interpolation == InterpolationStep {
		return tr.Values[k]
	}
	t0, t1 := tr.Times[k], tr.Times[i]
	alpha := float32(0)
	if t1 > t0 {
		alpha = (t - t0) / (t1 - t0)
	}
	a, b := tr.Values[k], tr.Values[i]
	if tr.Path == TrackRotation {
		q := slerp(vecQuat(a), vecQuat(b), alpha)
		return mgl32.Vec4{q.V.X(), q.V.Y(), q.V.Z(), q.W}
	}
	return a.Add(b.Sub(a).Mul(alpha))
}

// Apply writes the sampled value at t into the target node.
func (tr *Track) Apply(t float32) {
	if tr == nil || tr.Target == nil {
		return
	}
	v := tr.Sample(t)
	switch tr.Path {
	case TrackTranslation:
		tr.Target.Position = v.Vec3()
	case TrackRotation:
		tr.Target.Rotation = vecQuat(v).Normalize()
	case TrackScale:
		tr.Target.Scale = v.Vec3()
	}
}

func vecQuat(v mgl32.Vec4) mgl32.Quat {
	return mgl32.Quat{W: v.W(), V: v.Vec3()}
}

// slerp interpolates along the shorter arc.
func slerp(a, b mgl32.Quat, alpha float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, alpha)
}

// Clip is a named set of tracks played together.
type Clip struct {
	Name     string
	Duration float64
	Tracks   []*Track
}

// NewClip builds a clip whose duration is its longest track.
func NewClip(name string, tracks []*Track) *Clip {
	c := &Clip{Name: name, Tracks: tracks}
	for _, tr := range tracks {
		if d := float64(tr.Duration()); d > c.Duration {
			c.Duration = d
		}
	}
	return c
}

func (c *Clip) apply(t float64) {
	for _, tr := range c.Tracks {
		tr.Apply(float32(t))
	}
}
