package road

import "github.com/Faultbox/roadsmith/pkg/math"

// IntersectionSegment is a straight through-road with two side branches
// leaving its midpoint at right angles. Slot SlotCenter continues from the
// end point; SlotCenterLeft and SlotCenterRight start at the branch anchors.
type IntersectionSegment struct {
	StraightSegment

	center      math.Vec3
	leftReach   float32
	rightReach  float32
	centerLeft  math.Vec3
	centerRight math.Vec3
	leftRot     math.Quat
	rightRot    math.Quat
}

// NewIntersection places an intersection starting at p.Start. The branch
// anchors sit half a width to either side of the midpoint.
func NewIntersection(p StraightParams) *IntersectionSegment {
	s := &IntersectionSegment{}
	s.init(KindIntersection, p)

	s.center = math.Lerp(s.start, s.end, 0.5)
	s.leftReach = s.width / 2
	s.rightReach = s.width / 2
	s.leftRot = s.rotation.Mul(math.Euler(0, -90, 0))
	s.rightRot = s.rotation.Mul(math.Euler(0, 90, 0))
	s.updateBranches()
	return s
}

func (s *IntersectionSegment) updateBranches() {
	right := s.rotation.Rotate(math.Right)
	s.centerLeft = s.center.Sub(right.Scale(s.leftReach))
	s.centerRight = s.center.Add(right.Scale(s.rightReach))
}

// LeftPoint returns the anchor of the left branch.
func (s *IntersectionSegment) LeftPoint() math.Vec3 { return s.centerLeft }

// RightPoint returns the anchor of the right branch.
func (s *IntersectionSegment) RightPoint() math.Vec3 { return s.centerRight }

// LeftRotation is the frame of a road leaving the left anchor.
func (s *IntersectionSegment) LeftRotation() math.Quat { return s.leftRot }

// RightRotation is the frame of a road leaving the right anchor.
func (s *IntersectionSegment) RightRotation() math.Quat { return s.rightRot }

// ShrinkLeftPoint pulls the left anchor toward the midpoint.
func (s *IntersectionSegment) ShrinkLeftPoint(percent float32) {
	s.leftReach *= 1 - math.Clamp01(percent)
	s.updateBranches()
}

// ShrinkRightPoint pulls the right anchor toward the midpoint.
func (s *IntersectionSegment) ShrinkRightPoint(percent float32) {
	s.rightReach *= 1 - math.Clamp01(percent)
	s.updateBranches()
}

func (s *IntersectionSegment) Clone() Segment {
	c := *s
	return &c
}
