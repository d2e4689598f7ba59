package road

import (
	gomath "math"

	"github.com/Faultbox/roadsmith/pkg/math"
)

// CornerParams describes a circular arc. A positive Angle turns right.
type CornerParams struct {
	Width      float32
	LeftWidth  float32
	RightWidth float32
	Miu        float32
	Start      math.Vec3
	Pitch      float32
	Yaw        float32
	Roll       float32
	Angle      float32
	Radius     float32
}

// CornerSegment sweeps the start point around a circle center lying in the
// plane given by pitch and yaw. Roll banks the cross-section only; it never
// tilts the plane of the arc.
type CornerSegment struct {
	base
	pitch    float32
	roll     float32
	startYaw float32
	endYaw   float32
	angle    float32
	radius   float32

	// side is +1 when the center lies to the right. It is fixed at
	// construction so a corner shrunk to zero angle keeps its center.
	side          float32
	plane         math.Quat
	center        math.Vec3
	centerToStart math.Vec3
}

// NewCorner places an arc starting at p.Start.
func NewCorner(p CornerParams) *CornerSegment {
	c := &CornerSegment{
		base:     newBase(KindCorner, p.Width, p.LeftWidth, p.RightWidth, p.Miu, p.Start),
		pitch:    p.Pitch,
		roll:     p.Roll,
		startYaw: p.Yaw,
		angle:    p.Angle,
		radius:   p.Radius,
		side:     math.Sign(p.Angle),
		plane:    math.Euler(p.Pitch, p.Yaw, 0),
	}
	c.yaw = p.Yaw
	c.updateCenter()
	c.updateEnd()
	return c
}

func (c *CornerSegment) updateCenter() {
	c.centerToStart = c.plane.Rotate(math.Right).Scale(-c.side)
	c.center = c.start.Sub(c.centerToStart.Scale(c.radius))
}

func (c *CornerSegment) updateEnd() {
	c.end = c.Position(1, 0)
	c.endYaw = c.Rotation(1).EulerAngles().Y
}

// Pitch returns the inclination of the arc plane.
func (c *CornerSegment) Pitch() float32 { return c.pitch }

// Angle returns the signed sweep in degrees.
func (c *CornerSegment) Angle() float32 { return c.angle }

// Radius returns the centerline radius.
func (c *CornerSegment) Radius() float32 { return c.radius }

// Center returns the circle center.
func (c *CornerSegment) Center() math.Vec3 { return c.center }

// EndYaw returns the heading at the end of the arc.
func (c *CornerSegment) EndYaw() float32 { return c.endYaw }

// Length returns the arc length.
func (c *CornerSegment) Length() float32 {
	return float32(2*gomath.Pi) * c.radius * absf(c.angle) / 360
}

// sweep rotates about the plane normal by the fraction t of the angle.
func (c *CornerSegment) sweep(t float32) math.Quat {
	return math.AngleAxis(t*c.angle, c.plane.Rotate(math.Up))
}

func (c *CornerSegment) Position(t, offset float32) math.Vec3 {
	t = math.Clamp01(t)
	onArc := c.center.Add(c.sweep(t).Rotate(c.centerToStart).Scale(c.radius))
	if offset == 0 {
		return onArc
	}
	return onArc.Add(c.Rotation(t).Rotate(math.Right).Scale(offset))
}

// Tangent is the plane forward swept by t*angle. It does not depend on the
// radius, so a zero-radius corner still has a direction.
func (c *CornerSegment) Tangent(t float32) math.Vec3 {
	t = math.Clamp01(t)
	return c.sweep(t).Rotate(c.plane.Rotate(math.Forward))
}

func (c *CornerSegment) Normal(t float32) math.Vec3 {
	return c.Rotation(t).Rotate(math.Up)
}

func (c *CornerSegment) Rotation(t float32) math.Quat {
	t = math.Clamp01(t)
	return c.sweep(t).Mul(c.plane).Mul(math.AngleAxis(c.roll, math.Forward))
}

func (c *CornerSegment) Roll(t float32) float32 {
	return math.Wrap180(c.Rotation(t).EulerAngles().Z)
}

func (c *CornerSegment) GenerateMesh(subdivision, baseIndex int) *Mesh {
	return stripMesh(c, subdivision, baseIndex)
}

// ShrinkStartPoint advances the start along the arc and re-derives the
// plane frame there. The circle center does not move.
func (c *CornerSegment) ShrinkStartPoint(percent float32) {
	percent = math.Clamp01(percent)
	c.start = c.Position(percent, 0)
	c.plane = c.sweep(percent).Mul(c.plane).Normalize()
	c.angle *= 1 - percent
	c.startYaw = c.plane.EulerAngles().Y
	c.yaw = c.startYaw
	c.updateCenter()
	c.updateEnd()
}

func (c *CornerSegment) ShrinkEndPoint(percent float32) {
	c.angle *= 1 - math.Clamp01(percent)
	c.updateEnd()
}

func (c *CornerSegment) Clone() Segment {
	n := *c
	return &n
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
