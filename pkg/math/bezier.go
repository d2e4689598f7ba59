package math

// CubicPoint evaluates the cubic Bezier curve p0..p3 at t.
// t is not clamped.
func CubicPoint(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Scale(omt2 * omt).
		Add(p1.Scale(3 * omt2 * t)).
		Add(p2.Scale(3 * omt * t2)).
		Add(p3.Scale(t2 * t))
}

// CubicDerivative returns the first derivative of the curve at t.
func CubicDerivative(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	omt := 1 - t
	return p1.Sub(p0).Scale(3 * omt * omt).
		Add(p2.Sub(p1).Scale(6 * omt * t)).
		Add(p3.Sub(p2).Scale(3 * t * t))
}

// CubicTangent returns the normalized derivative at t. It is the zero
// vector where the derivative vanishes, which always happens when all four
// points coincide.
func CubicTangent(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	return CubicDerivative(p0, p1, p2, p3, t).Normalize()
}
