package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// AngleAxis creates a rotation of deg degrees around axis.
func AngleAxis(deg float32, axis Vec3) Quat {
	return QuatFromAxisAngle(axis.Normalize(), Radians(deg))
}

// Euler builds a rotation from pitch (about X), yaw (about Y) and roll
// (about Z), in degrees. Roll is applied first, then pitch, then yaw, so a
// positive yaw turns Forward toward Right and a positive pitch tilts it down.
func Euler(pitch, yaw, roll float32) Quat {
	return AngleAxis(yaw, Up).Mul(AngleAxis(pitch, Right)).Mul(AngleAxis(roll, Forward))
}

// LookRotation returns the rotation whose Forward axis points along forward
// and whose Up axis lies in the plane of forward and up.
//
// When forward is parallel to up the secondary axis is world Z, negated for
// upward headings, which keeps Right continuous for a segment pitching
// through vertical. A zero forward yields the identity.
func LookRotation(forward, up Vec3) Quat {
	f := forward.Normalize()
	if f.IsZero() {
		return QuatIdentity()
	}
	r := up.Cross(f).Normalize()
	if r.IsZero() {
		r = Vec3{0, 0, -Sign(f.Y)}.Cross(f).Normalize()
		if r.IsZero() {
			r = Up.Cross(f).Normalize()
		}
	}
	u := f.Cross(r)
	return fromBasis(r, u, f)
}

// fromBasis converts an orthonormal basis (the images of Right, Up and
// Forward) into a quaternion.
func fromBasis(r, u, f Vec3) Quat {
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quat
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := sqrtf(trace+1) * 2
		q = Quat{W: 0.25 * s, X: (m21 - m12) / s, Y: (m02 - m20) / s, Z: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := sqrtf(1+m00-m11-m22) * 2
		q = Quat{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := sqrtf(1+m11-m00-m22) * 2
		q = Quat{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}
	default:
		s := sqrtf(1+m22-m00-m11) * 2
		q = Quat{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}
	return q.Normalize()
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Conjugate returns the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// EulerAngles returns (pitch, yaw, roll) in degrees, each in [0, 360), such
// that Euler(pitch, yaw, roll) reproduces q.
func (q Quat) EulerAngles() Vec3 {
	f := q.Rotate(Forward)
	r := q.Rotate(Right)
	u := q.Rotate(Up)

	pitch := math.Asin(float64(Clamp(-f.Y, -1, 1)))
	var yaw, roll float64
	if math.Abs(math.Cos(pitch)) > 1e-4 {
		yaw = math.Atan2(float64(f.X), float64(f.Z))
		roll = math.Atan2(float64(r.Y), float64(u.Y))
	} else {
		// Gimbal lock: fold roll into yaw.
		yaw = math.Atan2(float64(-r.Z), float64(r.X))
	}
	return Vec3{
		X: Wrap360(float32(pitch * rad2deg)),
		Y: Wrap360(float32(yaw * rad2deg)),
		Z: Wrap360(float32(roll * rad2deg)),
	}
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
