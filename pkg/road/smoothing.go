package road

import "github.com/Faultbox/roadsmith/pkg/math"

// MaxSmoothPercent is the largest fraction of a segment a transition may
// consume at each end.
const MaxSmoothPercent = 0.5

// SmoothPolicy decides whether the joint between parent and the child in
// slot gets a transition.
type SmoothPolicy func(parent Segment, slot int, child Segment) bool

// AlwaysSmooth inserts a transition at every joint.
func AlwaysSmooth(Segment, int, Segment) bool { return true }

// Tolerances used by FrameMismatch.
const (
	mismatchDistance = 1e-3
	mismatchAngle    = 1e-2
	mismatchDot      = 1 - 1e-6
)

// FrameMismatch inserts a transition only where the child does not
// continue the parent seamlessly: a gap, a change of heading or slope, a
// change of roll, or a change of width.
func FrameMismatch(parent Segment, slot int, child Segment) bool {
	exit := exitFrame(parent, slot)
	if exit.point.Distance(child.StartPoint()) > mismatchDistance {
		return true
	}
	if exit.direction.Dot(child.Tangent(0)) < mismatchDot {
		return true
	}
	if absf(math.Wrap180(parent.Roll(1)-child.Roll(0))) > mismatchAngle {
		return true
	}
	return absf(exit.width-child.Width()) > mismatchDistance
}

// SmoothOptions configures SmoothRoad.
type SmoothOptions struct {
	// Percent of each adjoining segment given up to the transition,
	// clamped to [0, MaxSmoothPercent].
	Percent float32
	// Policy selects the joints to smooth. Nil means AlwaysSmooth.
	Policy SmoothPolicy
}

// SmoothRoad returns a copy of t in which the selected parent-child joints
// are replaced by Bezier transitions, and the number of transitions
// inserted. t itself is never modified.
func SmoothRoad(t *Tree, opts SmoothOptions) (*Tree, int) {
	out := t.Clone()
	return out, smoothInPlace(out, opts)
}

// smoothInPlace walks t breadth-first. At each joint it shrinks the parent
// end and the child start by the smoothing percent and splices a transition
// between them. Transitions are never split again.
func smoothInPlace(t *Tree, opts SmoothOptions) int {
	if t.root == NoNode {
		return 0
	}
	percent := math.Clamp(opts.Percent, 0, MaxSmoothPercent)
	policy := opts.Policy
	if policy == nil {
		policy = AlwaysSmooth
	}

	inserted := 0
	queue := []NodeID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := t.nodes[id]

		for slot := range n.children {
			childID := n.children[slot]
			if childID == NoNode {
				continue
			}
			queue = append(queue, childID)

			parent := n.seg
			child := t.nodes[childID].seg
			if parent.Kind() == KindSmooth || child.Kind() == KindSmooth {
				continue
			}
			if !policy(parent, slot, child) {
				continue
			}

			smooth := t.NewNode(joinSegments(parent, slot, child, percent))
			// InsertNode only fails on bad handles or slots, neither of
			// which can occur here.
			_ = t.InsertNode(id, smooth, slot)
			inserted++
		}
	}
	return inserted
}

// frame is the boundary of a segment at one of its attachment points.
type frame struct {
	point     math.Vec3
	direction math.Vec3
	width     float32
}

// exitFrame returns where a child in slot leaves parent. Intersection
// branches leave through an opening as wide as the intersection is long.
func exitFrame(parent Segment, slot int) frame {
	if in, ok := parent.(*IntersectionSegment); ok {
		switch slot {
		case SlotCenterLeft:
			return frame{in.LeftPoint(), in.LeftRotation().Rotate(math.Forward), in.Length()}
		case SlotCenterRight:
			return frame{in.RightPoint(), in.RightRotation().Rotate(math.Forward), in.Length()}
		}
	}
	return frame{parent.EndPoint(), parent.Tangent(1), parent.Width()}
}

// shrinkExit shrinks parent at the attachment point of slot.
func shrinkExit(parent Segment, slot int, percent float32) {
	if in, ok := parent.(*IntersectionSegment); ok {
		switch slot {
		case SlotCenterLeft:
			in.ShrinkLeftPoint(percent)
			return
		case SlotCenterRight:
			in.ShrinkRightPoint(percent)
			return
		}
	}
	parent.ShrinkEndPoint(percent)
}

// joinSegments shrinks both sides of a joint and builds the transition
// that fills the gap.
func joinSegments(parent Segment, slot int, child Segment, percent float32) *SmoothSegment {
	before := exitFrame(parent, slot)
	oldChildStart := child.StartPoint()

	parentDist, parentTangent := cornerControlDistance(parent, percent)
	childDist, childTangent := cornerControlDistance(child, percent)

	shrinkExit(parent, slot, percent)
	child.ShrinkStartPoint(percent)

	after := exitFrame(parent, slot)
	childStart := child.StartPoint()

	control1 := before.point
	if parentTangent {
		control1 = after.point.Add(after.direction.Scale(parentDist))
	}
	control2 := oldChildStart
	if childTangent {
		control2 = childStart.Sub(child.Tangent(0).Scale(childDist))
	}

	width := before.width
	if w := child.Width(); w < width {
		width = w
	}

	return NewSmooth(SmoothParams{
		Width:     width,
		Miu:       parent.Miu(),
		Start:     after.point,
		Control1:  control1,
		Control2:  control2,
		End:       childStart,
		StartRoll: parent.Roll(1),
		EndRoll:   child.Roll(0),
		Fallback:  before.direction,
	})
}

// cornerControlDistance returns how far from the shrunk boundary a control
// point must sit on the arc tangent, |radius * tan(angle * percent)|, and
// whether that tangent construction applies. Sweeps of 90 degrees or more
// fall back to the original boundary point.
func cornerControlDistance(seg Segment, percent float32) (float32, bool) {
	c, ok := seg.(*CornerSegment)
	if !ok {
		return 0, false
	}
	sweep := c.Angle() * percent
	if absf(sweep) >= 90 {
		return 0, false
	}
	return absf(c.Radius() * math.Tan(sweep)), true
}
