package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		v    Vec3
		want Vec3
	}{
		{"identity", QuatIdentity(), Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"yaw 90 turns forward right", AngleAxis(90, Up), Forward, Right},
		{"yaw 90 turns left to forward", AngleAxis(90, Up), Vec3{-1, 0, 0}, Forward},
		{"pitch 90 tilts forward down", AngleAxis(90, Right), Forward, Vec3{0, -1, 0}},
		{"roll 90 lifts right", AngleAxis(90, Forward), Right, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.Rotate(tt.v)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestQuatMulOrder(t *testing.T) {
	// Euler applies roll, then pitch, then yaw.
	q := Euler(90, 90, 0)
	got := q.Rotate(Forward)
	want := Vec3{0, -1, 0}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Euler(90,90,0) forward = %v, want %v", got, want)
	}

	q = Euler(0, 90, 90)
	got = q.Rotate(Right)
	if !got.ApproxEqual(Up, 1e-5) {
		t.Errorf("Euler(0,90,90) right = %v, want %v", got, Up)
	}
}

func TestEulerAnglesRoundTrip(t *testing.T) {
	tests := []struct {
		pitch, yaw, roll float32
	}{
		{0, 0, 0},
		{0, 90, 0},
		{20, 45, 0},
		{-20, 0, 20},
		{10, 200, -35},
		{0, 270, 170},
	}

	for _, tt := range tests {
		q := Euler(tt.pitch, tt.yaw, tt.roll)
		e := q.EulerAngles()
		back := Euler(e.X, e.Y, e.Z)
		for _, axis := range []Vec3{Forward, Right, Up} {
			if !q.Rotate(axis).ApproxEqual(back.Rotate(axis), 1e-4) {
				t.Errorf("Euler(%v,%v,%v) -> %v does not reproduce rotation", tt.pitch, tt.yaw, tt.roll, e)
			}
		}
		if d := absf(Wrap180(e.Y - tt.yaw)); d > 1e-3 {
			t.Errorf("yaw: got %v, want %v", e.Y, tt.yaw)
		}
		if d := absf(Wrap180(e.Z - tt.roll)); d > 1e-3 {
			t.Errorf("roll: got %v, want %v", e.Z, tt.roll)
		}
	}
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
		up      Vec3
	}{
		{"forward", Forward, Up},
		{"right", Right, Up},
		{"diagonal", Vec3{1, 1, 1}, Up},
		{"tilted up", Forward, Vec3{0.3, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LookRotation(tt.forward, tt.up)
			f := q.Rotate(Forward)
			if !f.ApproxEqual(tt.forward.Normalize(), 1e-5) {
				t.Errorf("forward = %v, want %v", f, tt.forward.Normalize())
			}
			// Up stays in the plane of forward and the requested up.
			u := q.Rotate(Up)
			plane := tt.forward.Cross(tt.up).Normalize()
			if d := absf(u.Dot(plane)); d > 1e-5 {
				t.Errorf("up %v leaves the forward/up plane (dot %v)", u, d)
			}
			if u.Dot(tt.up) <= 0 {
				t.Errorf("up %v points away from %v", u, tt.up)
			}
		})
	}
}

func TestLookRotationVertical(t *testing.T) {
	q := LookRotation(Up, Up)
	if got := q.Rotate(Forward); !got.ApproxEqual(Up, 1e-5) {
		t.Errorf("forward = %v, want %v", got, Up)
	}
	if got := q.Rotate(Right); !got.ApproxEqual(Right, 1e-5) {
		t.Errorf("right = %v, want %v", got, Right)
	}

	q = LookRotation(Vec3{0, -1, 0}, Up)
	if got := q.Rotate(Right); !got.ApproxEqual(Right, 1e-5) {
		t.Errorf("down-facing right = %v, want %v", got, Right)
	}
}

func TestLookRotationZeroForward(t *testing.T) {
	if q := LookRotation(Vec3{}, Up); q != QuatIdentity() {
		t.Errorf("LookRotation(zero) = %v, want identity", q)
	}
}
