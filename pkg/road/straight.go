package road

import "github.com/Faultbox/roadsmith/pkg/math"

// StraightParams describes a straight run. LeftWidth and RightWidth default
// to half of Width when zero.
type StraightParams struct {
	Width      float32
	LeftWidth  float32
	RightWidth float32
	Miu        float32
	Start      math.Vec3
	Length     float32
	Pitch      float32
	Roll       float32
	Yaw        float32
}

// StraightSegment is a flat run with a single orientation.
type StraightSegment struct {
	base
	length   float32
	pitch    float32
	roll     float32
	rotation math.Quat
}

// NewStraight places a straight run starting at p.Start.
func NewStraight(p StraightParams) *StraightSegment {
	s := &StraightSegment{}
	s.init(KindStraight, p)
	return s
}

func (s *StraightSegment) init(kind Kind, p StraightParams) {
	s.base = newBase(kind, p.Width, p.LeftWidth, p.RightWidth, p.Miu, p.Start)
	s.yaw = p.Yaw
	s.length = p.Length
	s.pitch = p.Pitch
	s.roll = p.Roll
	s.rotation = math.Euler(p.Pitch, p.Yaw, p.Roll)
	s.end = s.start.Add(s.rotation.Rotate(math.Forward).Scale(p.Length))
}

// Pitch returns the slope in degrees; positive tilts downward.
func (s *StraightSegment) Pitch() float32 { return s.pitch }

// Length returns the current length.
func (s *StraightSegment) Length() float32 { return s.length }

// EndYaw equals Yaw for a straight run.
func (s *StraightSegment) EndYaw() float32 { return s.yaw }

// Position is exact at both ends when offset is zero.
func (s *StraightSegment) Position(t, offset float32) math.Vec3 {
	return math.Lerp(s.start, s.end, t).Add(s.rotation.Rotate(math.Right).Scale(offset))
}

func (s *StraightSegment) Tangent(float32) math.Vec3 {
	return s.rotation.Rotate(math.Forward)
}

func (s *StraightSegment) Normal(float32) math.Vec3 {
	return s.rotation.Rotate(math.Up)
}

func (s *StraightSegment) Rotation(float32) math.Quat {
	return s.rotation
}

func (s *StraightSegment) Roll(float32) float32 {
	return math.Wrap180(s.roll)
}

// GenerateMesh always emits a single quad; the surface is planar.
func (s *StraightSegment) GenerateMesh(_, baseIndex int) *Mesh {
	return stripMesh(s, 1, baseIndex)
}

func (s *StraightSegment) ShrinkStartPoint(percent float32) {
	percent = math.Clamp01(percent)
	s.start = s.start.Add(s.Tangent(0).Scale(percent * s.length))
	s.length *= 1 - percent
}

func (s *StraightSegment) ShrinkEndPoint(percent float32) {
	percent = math.Clamp01(percent)
	s.end = s.end.Sub(s.Tangent(1).Scale(percent * s.length))
	s.length *= 1 - percent
}

func (s *StraightSegment) Clone() Segment {
	c := *s
	return &c
}
