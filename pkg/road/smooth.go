package road

import (
	gomath "math"

	"github.com/Faultbox/roadsmith/pkg/math"
)

// SmoothParams describes a transition. Start and End are the boundary
// points of the two segments being joined, Control1 and Control2 the inner
// Bezier control points. Fallback is the direction used where the curve has
// no tangent, typically the exit direction of the preceding segment.
type SmoothParams struct {
	Width      float32
	LeftWidth  float32
	RightWidth float32
	Miu        float32
	Start      math.Vec3
	Control1   math.Vec3
	Control2   math.Vec3
	End        math.Vec3
	StartRoll  float32
	EndRoll    float32
	Fallback   math.Vec3
}

// SmoothSegment is a cubic Bezier transition between two segments. Roll
// follows a cosine ease so the bank rate is zero at both ends.
type SmoothSegment struct {
	base
	control1  math.Vec3
	control2  math.Vec3
	startRoll float32
	endRoll   float32
	fallback  math.Vec3
}

// NewSmooth builds a transition. EndRoll is unwrapped to lie within 180
// degrees of StartRoll so the blend takes the short way round.
func NewSmooth(p SmoothParams) *SmoothSegment {
	s := &SmoothSegment{
		base:      newBase(KindSmooth, p.Width, p.LeftWidth, p.RightWidth, p.Miu, p.Start),
		control1:  p.Control1,
		control2:  p.Control2,
		startRoll: p.StartRoll,
		endRoll:   p.StartRoll + math.Wrap180(p.EndRoll-p.StartRoll),
		fallback:  p.Fallback,
	}
	s.end = p.End
	s.yaw = math.LookRotation(s.Tangent(0), math.Up).EulerAngles().Y
	return s
}

// ControlPoints returns the two inner Bezier control points.
func (s *SmoothSegment) ControlPoints() (math.Vec3, math.Vec3) {
	return s.control1, s.control2
}

// StartRoll returns the bank at t=0.
func (s *SmoothSegment) StartRoll() float32 { return s.startRoll }

// EndRoll returns the bank at t=1.
func (s *SmoothSegment) EndRoll() float32 { return s.endRoll }

func (s *SmoothSegment) EndYaw() float32 {
	return math.LookRotation(s.Tangent(1), math.Up).EulerAngles().Y
}

// Length approximates the curve length with a 16-piece polyline.
func (s *SmoothSegment) Length() float32 {
	const steps = 16
	var length float32
	prev := s.start
	for i := 1; i <= steps; i++ {
		p := s.centerline(float32(i) / steps)
		length += p.Distance(prev)
		prev = p
	}
	return length
}

func (s *SmoothSegment) centerline(t float32) math.Vec3 {
	return math.CubicPoint(s.start, s.control1, s.control2, s.end, t)
}

func (s *SmoothSegment) Position(t, offset float32) math.Vec3 {
	t = math.Clamp01(t)
	return s.centerline(t).Add(s.Rotation(t).Rotate(math.Right).Scale(offset))
}

// Tangent falls back to the chord and then to the fallback direction when
// the derivative vanishes.
func (s *SmoothSegment) Tangent(t float32) math.Vec3 {
	t = math.Clamp01(t)
	if d := math.CubicTangent(s.start, s.control1, s.control2, s.end, t); !d.IsZero() {
		return d
	}
	if d := s.end.Sub(s.start).Normalize(); !d.IsZero() {
		return d
	}
	if d := s.fallback.Normalize(); !d.IsZero() {
		return d
	}
	return math.Forward
}

func (s *SmoothSegment) Normal(t float32) math.Vec3 {
	return defaultNormal(s.Tangent(t))
}

// Rotation is the unbanked curve frame rolled by Roll(t).
func (s *SmoothSegment) Rotation(t float32) math.Quat {
	t = math.Clamp01(t)
	frame := math.LookRotation(s.Tangent(t), s.Normal(t))
	return frame.Mul(math.AngleAxis(s.Roll(t), math.Forward))
}

func (s *SmoothSegment) Roll(t float32) float32 {
	t = math.Clamp01(t)
	half := (s.startRoll - s.endRoll) / 2
	mid := (s.startRoll + s.endRoll) / 2
	return math.Wrap180(half*float32(gomath.Cos(gomath.Pi*float64(t))) + mid)
}

func (s *SmoothSegment) GenerateMesh(subdivision, baseIndex int) *Mesh {
	return stripMesh(s, subdivision, baseIndex)
}

// ShrinkStartPoint is a no-op: transitions are never re-split.
func (s *SmoothSegment) ShrinkStartPoint(float32) {}

// ShrinkEndPoint is a no-op: transitions are never re-split.
func (s *SmoothSegment) ShrinkEndPoint(float32) {}

func (s *SmoothSegment) Clone() Segment {
	c := *s
	return &c
}
