package math

import "math"

// Epsilon is the length below which vectors are treated as degenerate.
const Epsilon = 1e-6

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return float32(float64(deg) * deg2rad)
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return float32(float64(rad) * rad2deg)
}

// Wrap360 maps an angle in degrees into [0, 360).
func Wrap360(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// Wrap180 maps an angle in degrees into (-180, 180].
func Wrap180(deg float32) float32 {
	d := Wrap360(deg)
	if d > 180 {
		d -= 360
	}
	return d
}

// Sign returns -1 for negative values and 1 otherwise, so a zero angle
// behaves like a positive one.
func Sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Sin returns the sine of an angle in degrees.
func Sin(deg float32) float32 {
	return float32(math.Sin(float64(deg) * deg2rad))
}

// Cos returns the cosine of an angle in degrees.
func Cos(deg float32) float32 {
	return float32(math.Cos(float64(deg) * deg2rad))
}

// Tan returns the tangent of an angle in degrees.
func Tan(deg float32) float32 {
	return float32(math.Tan(float64(deg) * deg2rad))
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
