// Package road models a branching road as a tree of parametric segments and
// turns that tree into a triangle mesh of the road surface.
//
// Four segment kinds exist: straight runs, circular corners, intersections
// with three outgoing slots, and smooth Bezier transitions that are inserted
// between two adjacent segments by SmoothRoad.
package road

import (
	"fmt"

	"github.com/Faultbox/roadsmith/pkg/math"
)

// Kind identifies the geometry of a segment.
type Kind int

const (
	KindStraight Kind = iota
	KindSmooth
	KindCorner
	KindIntersection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindSmooth:
		return "smooth"
	case KindCorner:
		return "corner"
	case KindIntersection:
		return "intersection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Arity is the fixed number of child slots for the kind.
func (k Kind) Arity() int {
	if k == KindIntersection {
		return 3
	}
	return 1
}

// Child slots. Every kind has DefaultSlot; intersections add the two
// branch slots.
const (
	DefaultSlot     = 0
	SlotCenter      = 0
	SlotCenterLeft  = 1
	SlotCenterRight = 2
)

// Segment is one unit of road geometry. t is the parametric coordinate in
// [0, 1] along the centerline; offset displaces a point along the local
// right axis.
type Segment interface {
	Kind() Kind

	StartPoint() math.Vec3
	EndPoint() math.Vec3
	Width() float32
	LeftWidth() float32
	RightWidth() float32
	Miu() float32
	// Yaw is the heading at the start, EndYaw the heading at t=1. Degrees.
	Yaw() float32
	EndYaw() float32
	// Length is the centerline length.
	Length() float32

	Position(t, offset float32) math.Vec3
	Tangent(t float32) math.Vec3
	Normal(t float32) math.Vec3
	Rotation(t float32) math.Quat
	// Roll returns the bank angle at t in (-180, 180] degrees.
	Roll(t float32) float32

	// GenerateMesh emits alternating left/right edge vertices at increasing
	// t and two triangles per slice, with indices offset by baseIndex.
	GenerateMesh(subdivision, baseIndex int) *Mesh

	// ShrinkStartPoint and ShrinkEndPoint pull one end toward the other by
	// percent of the current extent.
	ShrinkStartPoint(percent float32)
	ShrinkEndPoint(percent float32)

	// Clone copies the segment's own parameters. Tree links are not part of
	// a segment.
	Clone() Segment
}

// base holds the fields shared by every segment kind.
type base struct {
	kind       Kind
	start      math.Vec3
	end        math.Vec3
	width      float32
	leftWidth  float32
	rightWidth float32
	yaw        float32
	miu        float32
}

func newBase(kind Kind, width, leftWidth, rightWidth, miu float32, start math.Vec3) base {
	if leftWidth <= 0 {
		leftWidth = width / 2
	}
	if rightWidth <= 0 {
		rightWidth = width / 2
	}
	return base{
		kind:       kind,
		start:      start,
		width:      width,
		leftWidth:  leftWidth,
		rightWidth: rightWidth,
		miu:        miu,
	}
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) StartPoint() math.Vec3 { return b.start }
func (b *base) EndPoint() math.Vec3 { return b.end }
func (b *base) Width() float32 { return b.width }
func (b *base) LeftWidth() float32 { return b.leftWidth }
func (b *base) RightWidth() float32 { return b.rightWidth }
func (b *base) Miu() float32 { return b.miu }
func (b *base) Yaw() float32 { return b.yaw }

// defaultNormal returns tangent x (up x tangent). It is the zero vector for
// a vertical tangent; LookRotation then picks its secondary axis.
func defaultNormal(tangent math.Vec3) math.Vec3 {
	binormal := math.Up.Cross(tangent).Normalize()
	return tangent.Cross(binormal)
}

// stripMesh tessellates seg into a quad strip of subdivision slices.
func stripMesh(seg Segment, subdivision, baseIndex int) *Mesh {
	if subdivision < 1 {
		subdivision = 1
	}
	mesh := &Mesh{
		Vertices: make([]math.Vec3, 0, 2*(subdivision+1)),
		Indices:  make([]uint32, 0, 6*subdivision),
	}

	left, right := -seg.LeftWidth(), seg.RightWidth()
	for i := 0; i <= subdivision; i++ {
		t := float32(i) / float32(subdivision)
		mesh.Vertices = append(mesh.Vertices, seg.Position(t, left), seg.Position(t, right))
	}

	b := uint32(baseIndex)
	for i := uint32(0); i < uint32(subdivision); i++ {
		mesh.Indices = append(mesh.Indices,
			b+2*(i+1), b+2*i+1, b+2*i,
			b+2*(i+1), b+2*(i+1)+1, b+2*i+1,
		)
	}
	return mesh
}
