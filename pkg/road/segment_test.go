package road

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/roadsmith/pkg/math"
)

const tol = 1e-3

func approx(a, b float32) bool {
	return absf(a-b) <= tol
}

func TestStraightEndpointsExact(t *testing.T) {
	tests := []StraightParams{
		{Width: 5, Length: 10},
		{Width: 3, Start: math.Vec3{X: 1.5, Y: -2, Z: 7.25}, Length: 13.7, Pitch: -20, Roll: 20, Yaw: 33},
		{Width: 8, Start: math.Vec3{X: -100, Y: 4, Z: 0.1}, Length: 0.3, Pitch: 45, Roll: -170, Yaw: 271},
		{Width: 1, Length: 0},
	}

	for _, p := range tests {
		s := NewStraight(p)
		if got := s.Position(0, 0); got != s.StartPoint() {
			t.Errorf("%+v: Position(0,0) = %v, want %v", p, got, s.StartPoint())
		}
		if got := s.Position(1, 0); got != s.EndPoint() {
			t.Errorf("%+v: Position(1,0) = %v, want %v", p, got, s.EndPoint())
		}
		if d := s.StartPoint().Distance(s.EndPoint()); !approx(d, p.Length) {
			t.Errorf("%+v: extent %v, want %v", p, d, p.Length)
		}
	}
}

func TestStraightEndPoint(t *testing.T) {
	s := NewStraight(StraightParams{Width: 5, Length: 10})
	if got := s.EndPoint(); got != (math.Vec3{X: 0, Y: 0, Z: 10}) {
		t.Errorf("EndPoint = %v, want (0,0,10)", got)
	}

	s = NewStraight(StraightParams{Width: 5, Length: 10, Yaw: 90})
	if got := s.EndPoint(); !got.ApproxEqual(math.Vec3{X: 10}, tol) {
		t.Errorf("yaw 90 EndPoint = %v, want (10,0,0)", got)
	}
}

func TestStraightEdges(t *testing.T) {
	s := NewStraight(StraightParams{Width: 6, Length: 10})
	if got := s.Position(0, -s.LeftWidth()); !got.ApproxEqual(math.Vec3{X: -3}, tol) {
		t.Errorf("left edge = %v, want (-3,0,0)", got)
	}

	s = NewStraight(StraightParams{Width: 6, LeftWidth: 1, RightWidth: 5, Length: 10})
	if s.LeftWidth() != 1 || s.RightWidth() != 5 {
		t.Errorf("asymmetric widths = %v/%v, want 1/5", s.LeftWidth(), s.RightWidth())
	}
}

func TestStraightShrinkCompounds(t *testing.T) {
	tests := []struct {
		p, q float32
	}{
		{0.1, 0.1},
		{0.25, 0.5},
		{0.5, 0.3},
		{0, 0.4},
	}

	for _, tt := range tests {
		s := NewStraight(StraightParams{Width: 5, Length: 40, Pitch: 10, Yaw: 30})
		s.ShrinkEndPoint(tt.p)
		s.ShrinkEndPoint(tt.q)

		want := 40 * (1 - tt.p) * (1 - tt.q)
		if !approx(s.Length(), want) {
			t.Errorf("p=%v q=%v: Length = %v, want %v", tt.p, tt.q, s.Length(), want)
		}
		if d := s.StartPoint().Distance(s.EndPoint()); !approx(d, want) {
			t.Errorf("p=%v q=%v: extent = %v, want %v", tt.p, tt.q, d, want)
		}
	}
}

func TestStraightShrinkStart(t *testing.T) {
	s := NewStraight(StraightParams{Width: 5, Length: 10})
	s.ShrinkStartPoint(0.2)
	if !s.StartPoint().ApproxEqual(math.Vec3{Z: 2}, tol) {
		t.Errorf("StartPoint = %v, want (0,0,2)", s.StartPoint())
	}
	if s.EndPoint() != (math.Vec3{Z: 10}) {
		t.Errorf("EndPoint moved to %v", s.EndPoint())
	}
}

func TestCornerChordLength(t *testing.T) {
	tests := []struct {
		radius, angle, pitch, yaw, roll float32
	}{
		{20, 90, 0, 0, 0},
		{20, -90, 0, 0, 0},
		{50, 30, 0, 45, 0},
		{60, 60, 20, 10, 30},
		{100, -70, -15, 200, -10},
		{10, 180, 0, 0, 0},
		{5, 359, 0, 0, 0},
	}

	for _, tt := range tests {
		c := NewCorner(CornerParams{
			Width: 10, Start: math.Vec3{X: 3, Y: 1, Z: -2},
			Pitch: tt.pitch, Yaw: tt.yaw, Roll: tt.roll, Angle: tt.angle, Radius: tt.radius,
		})
		chord := c.Position(0, 0).Distance(c.Position(1, 0))
		want := 2 * tt.radius * float32(gomath.Sin(gomath.Abs(float64(tt.angle))/2*gomath.Pi/180))
		if absf(chord-want) > 1e-3*tt.radius {
			t.Errorf("r=%v a=%v: chord = %v, want %v", tt.radius, tt.angle, chord, want)
		}
		if !c.Position(0, 0).ApproxEqual(c.StartPoint(), tol) {
			t.Errorf("r=%v a=%v: Position(0,0) = %v, want start %v", tt.radius, tt.angle, c.Position(0, 0), c.StartPoint())
		}
	}
}

func TestCornerQuarterTurn(t *testing.T) {
	s := NewStraight(StraightParams{Width: 5, Length: 10})
	c := NewCorner(CornerParams{Width: 5, Start: s.EndPoint(), Yaw: s.EndYaw(), Angle: 90, Radius: 20})

	if !c.EndPoint().ApproxEqual(math.Vec3{X: 20, Z: 30}, tol) {
		t.Errorf("EndPoint = %v, want (20,0,30)", c.EndPoint())
	}
	if !approx(c.EndYaw(), 90) {
		t.Errorf("EndYaw = %v, want 90", c.EndYaw())
	}
	if !c.Center().ApproxEqual(math.Vec3{X: 20, Z: 10}, tol) {
		t.Errorf("Center = %v, want (20,0,10)", c.Center())
	}
	if !c.Tangent(0).ApproxEqual(math.Forward, 1e-5) {
		t.Errorf("Tangent(0) = %v, want forward", c.Tangent(0))
	}
	if !c.Tangent(1).ApproxEqual(math.Right, 1e-5) {
		t.Errorf("Tangent(1) = %v, want right", c.Tangent(1))
	}
	if want := float32(10 * gomath.Pi); !approx(c.Length(), want) {
		t.Errorf("Length = %v, want %v", c.Length(), want)
	}
}

func TestCornerLeftTurn(t *testing.T) {
	c := NewCorner(CornerParams{Width: 5, Start: math.Vec3{Z: 10}, Angle: -90, Radius: 20})
	if !c.EndPoint().ApproxEqual(math.Vec3{X: -20, Z: 30}, tol) {
		t.Errorf("EndPoint = %v, want (-20,0,30)", c.EndPoint())
	}
	if !approx(math.Wrap180(c.EndYaw()), -90) {
		t.Errorf("EndYaw = %v, want 270", c.EndYaw())
	}
	// Forward must follow traversal direction for negative sweeps too.
	if !c.Tangent(0).ApproxEqual(math.Forward, 1e-5) {
		t.Errorf("Tangent(0) = %v, want forward", c.Tangent(0))
	}
}

func TestCornerDegenerate(t *testing.T) {
	start := math.Vec3{X: 1, Y: 2, Z: 3}

	zeroRadius := NewCorner(CornerParams{Width: 5, Start: start, Angle: 90, Radius: 0})
	if !zeroRadius.EndPoint().ApproxEqual(start, tol) {
		t.Errorf("zero radius EndPoint = %v, want %v", zeroRadius.EndPoint(), start)
	}
	if !zeroRadius.Tangent(1).ApproxEqual(math.Right, 1e-5) {
		t.Errorf("zero radius Tangent(1) = %v, want right", zeroRadius.Tangent(1))
	}

	zeroAngle := NewCorner(CornerParams{Width: 5, Start: start, Angle: 0, Radius: 20})
	if !zeroAngle.EndPoint().ApproxEqual(start, tol) {
		t.Errorf("zero angle EndPoint = %v, want %v", zeroAngle.EndPoint(), start)
	}
	if !zeroAngle.Tangent(0.5).ApproxEqual(math.Forward, 1e-5) {
		t.Errorf("zero angle Tangent = %v, want forward", zeroAngle.Tangent(0.5))
	}

	full := NewCorner(CornerParams{Width: 5, Start: start, Angle: 360, Radius: 20})
	if !full.EndPoint().ApproxEqual(start, 1e-2) {
		t.Errorf("full revolution EndPoint = %v, want %v", full.EndPoint(), start)
	}
}

func TestCornerShrink(t *testing.T) {
	params := CornerParams{Width: 5, Start: math.Vec3{Z: 10}, Angle: 90, Radius: 20}

	c := NewCorner(params)
	c.ShrinkEndPoint(0.5)
	if !approx(c.Angle(), 45) {
		t.Errorf("Angle = %v, want 45", c.Angle())
	}
	if !c.EndPoint().ApproxEqual(math.Vec3{X: 5.857864, Z: 24.142136}, tol) {
		t.Errorf("EndPoint = %v", c.EndPoint())
	}
	if !approx(c.EndYaw(), 45) {
		t.Errorf("EndYaw = %v, want 45", c.EndYaw())
	}

	c = NewCorner(params)
	c.ShrinkStartPoint(0.5)
	if !c.StartPoint().ApproxEqual(math.Vec3{X: 5.857864, Z: 24.142136}, tol) {
		t.Errorf("StartPoint = %v", c.StartPoint())
	}
	if !c.EndPoint().ApproxEqual(math.Vec3{X: 20, Z: 30}, tol) {
		t.Errorf("EndPoint = %v, want (20,0,30)", c.EndPoint())
	}
	if !c.Center().ApproxEqual(math.Vec3{X: 20, Z: 10}, tol) {
		t.Errorf("Center moved to %v", c.Center())
	}
	if !approx(c.Yaw(), 45) {
		t.Errorf("Yaw = %v, want 45", c.Yaw())
	}
	if !approx(c.Angle(), 45) {
		t.Errorf("Angle = %v, want 45", c.Angle())
	}
}

func TestCornerRoll(t *testing.T) {
	c := NewCorner(CornerParams{Width: 5, Angle: 90, Radius: 20, Roll: 30})
	for _, tt := range []float32{0, 0.5, 1} {
		if got := c.Roll(tt); !approx(got, 30) {
			t.Errorf("Roll(%v) = %v, want 30", tt, got)
		}
	}
	// Roll tilts the cross-section but not the arc.
	flat := NewCorner(CornerParams{Width: 5, Angle: 90, Radius: 20})
	if !c.EndPoint().ApproxEqual(flat.EndPoint(), tol) {
		t.Errorf("rolled EndPoint = %v, want %v", c.EndPoint(), flat.EndPoint())
	}
	if c.Position(0.5, 2.5).Y == flat.Position(0.5, 2.5).Y {
		t.Error("roll should lift the outer edge")
	}
}

func TestIntersectionAnchors(t *testing.T) {
	in := NewIntersection(StraightParams{Width: 10, Length: 20})

	if in.Kind() != KindIntersection {
		t.Fatalf("Kind = %v", in.Kind())
	}
	if !in.LeftPoint().ApproxEqual(math.Vec3{X: -5, Z: 10}, tol) {
		t.Errorf("LeftPoint = %v, want (-5,0,10)", in.LeftPoint())
	}
	if !in.RightPoint().ApproxEqual(math.Vec3{X: 5, Z: 10}, tol) {
		t.Errorf("RightPoint = %v, want (5,0,10)", in.RightPoint())
	}

	tests := []struct {
		slot  int
		point math.Vec3
		yaw   float32
	}{
		{SlotCenter, math.Vec3{Z: 20}, 0},
		{SlotCenterLeft, math.Vec3{X: -5, Z: 10}, -90},
		{SlotCenterRight, math.Vec3{X: 5, Z: 10}, 90},
	}
	for _, tt := range tests {
		point, yaw, err := SlotAnchor(in, tt.slot)
		if err != nil {
			t.Fatalf("SlotAnchor(%d): %v", tt.slot, err)
		}
		if !point.ApproxEqual(tt.point, tol) || !approx(math.Wrap180(yaw), tt.yaw) {
			t.Errorf("slot %d: got %v yaw %v, want %v yaw %v", tt.slot, point, yaw, tt.point, tt.yaw)
		}
	}
	if _, _, err := SlotAnchor(in, 3); err == nil {
		t.Error("expected error for slot 3")
	}

	in.ShrinkLeftPoint(0.5)
	if !in.LeftPoint().ApproxEqual(math.Vec3{X: -2.5, Z: 10}, tol) {
		t.Errorf("shrunk LeftPoint = %v, want (-2.5,0,10)", in.LeftPoint())
	}
	if !in.RightPoint().ApproxEqual(math.Vec3{X: 5, Z: 10}, tol) {
		t.Errorf("RightPoint moved to %v", in.RightPoint())
	}
}

func TestSmoothRollEase(t *testing.T) {
	s := NewSmooth(SmoothParams{
		Width:     5,
		Start:     math.Vec3{},
		Control1:  math.Vec3{Z: 5},
		Control2:  math.Vec3{Z: 5},
		End:       math.Vec3{Z: 10},
		StartRoll: 20,
		EndRoll:   -10,
	})

	if got := s.Roll(0); !approx(got, 20) {
		t.Errorf("Roll(0) = %v, want 20", got)
	}
	if got := s.Roll(1); !approx(got, -10) {
		t.Errorf("Roll(1) = %v, want -10", got)
	}
	if got := s.Roll(0.5); !approx(got, 5) {
		t.Errorf("Roll(0.5) = %v, want 5", got)
	}
	// Zero bank rate at both ends.
	const h = 1e-3
	if rate := (s.Roll(h) - s.Roll(0)) / h; absf(rate) > 0.1 {
		t.Errorf("roll rate at start = %v", rate)
	}
	if rate := (s.Roll(1) - s.Roll(1-h)) / h; absf(rate) > 0.1 {
		t.Errorf("roll rate at end = %v", rate)
	}
}

func TestSmoothRollShortWay(t *testing.T) {
	s := NewSmooth(SmoothParams{
		Width: 5, End: math.Vec3{Z: 10},
		StartRoll: 170, EndRoll: -170,
	})
	if got := math.Wrap360(s.Roll(0.5)); !approx(got, 180) {
		t.Errorf("Roll(0.5) = %v, want 180", got)
	}
}

func TestSmoothGeometry(t *testing.T) {
	s := NewSmooth(SmoothParams{
		Width:    4,
		Start:    math.Vec3{},
		Control1: math.Vec3{Z: 10},
		Control2: math.Vec3{Z: 10},
		End:      math.Vec3{X: 10, Z: 10},
	})
	if !s.Position(0, 0).ApproxEqual(s.StartPoint(), 1e-5) {
		t.Errorf("Position(0,0) = %v", s.Position(0, 0))
	}
	if !s.Position(1, 0).ApproxEqual(s.EndPoint(), 1e-5) {
		t.Errorf("Position(1,0) = %v", s.Position(1, 0))
	}
	if !s.Tangent(0).ApproxEqual(math.Forward, 1e-5) {
		t.Errorf("Tangent(0) = %v", s.Tangent(0))
	}
	if !s.Tangent(1).ApproxEqual(math.Right, 1e-5) {
		t.Errorf("Tangent(1) = %v", s.Tangent(1))
	}
	if !approx(s.EndYaw(), 90) {
		t.Errorf("EndYaw = %v, want 90", s.EndYaw())
	}

	// Shrinking a transition does nothing.
	before := *s
	s.ShrinkStartPoint(0.3)
	s.ShrinkEndPoint(0.3)
	if *s != before {
		t.Error("shrinking a smooth segment changed it")
	}
}

func TestSmoothDegenerateTangent(t *testing.T) {
	p := math.Vec3{X: 1, Y: 1, Z: 1}
	s := NewSmooth(SmoothParams{
		Width: 4, Start: p, Control1: p, Control2: p, End: p,
		Fallback: math.Right,
	})
	if !s.Tangent(0.5).ApproxEqual(math.Right, 1e-6) {
		t.Errorf("Tangent = %v, want fallback", s.Tangent(0.5))
	}
	if got := s.Position(0.5, 2); !got.ApproxEqual(math.Vec3{X: 1, Y: 1, Z: -1}, tol) {
		t.Errorf("edge = %v, want (1,1,-1)", got)
	}
}

func TestGenerateMeshCounts(t *testing.T) {
	curved := []Segment{
		NewCorner(CornerParams{Width: 5, Angle: 60, Radius: 30}),
		NewCorner(CornerParams{Width: 5, Angle: -45, Radius: 10, Pitch: 10, Roll: 15}),
		NewSmooth(SmoothParams{Width: 5, Control1: math.Vec3{Z: 3}, Control2: math.Vec3{X: 1, Z: 6}, End: math.Vec3{X: 3, Z: 8}}),
	}
	flat := []Segment{
		NewStraight(StraightParams{Width: 5, Length: 10}),
		NewIntersection(StraightParams{Width: 5, Length: 10}),
	}

	for _, n := range []int{1, 2, 5, 20} {
		for _, base := range []int{0, 7, 100} {
			for _, seg := range curved {
				checkMesh(t, seg, n, base, 2*(n+1), 6*n)
			}
			for _, seg := range flat {
				checkMesh(t, seg, n, base, 4, 6)
			}
		}
	}
}

func checkMesh(t *testing.T, seg Segment, subdivision, base, wantVerts, wantIdx int) {
	t.Helper()
	m := seg.GenerateMesh(subdivision, base)
	if len(m.Vertices) != wantVerts {
		t.Errorf("%s N=%d: %d vertices, want %d", seg.Kind(), subdivision, len(m.Vertices), wantVerts)
	}
	if len(m.Indices) != wantIdx {
		t.Errorf("%s N=%d: %d indices, want %d", seg.Kind(), subdivision, len(m.Indices), wantIdx)
	}
	for _, idx := range m.Indices {
		if int(idx) < base || int(idx) >= base+wantVerts {
			t.Errorf("%s N=%d B=%d: index %d out of range", seg.Kind(), subdivision, base, idx)
		}
	}
}

func TestStraightMeshFacesUp(t *testing.T) {
	m := NewStraight(StraightParams{Width: 4, Length: 10}).GenerateMesh(1, 0)
	for _, n := range m.Normals() {
		if !n.ApproxEqual(math.Up, 1e-5) {
			t.Errorf("normal = %v, want up", n)
		}
	}
}

func TestCloneCopiesParameters(t *testing.T) {
	segs := []Segment{
		NewStraight(StraightParams{Width: 5, Length: 10, Pitch: 5}),
		NewCorner(CornerParams{Width: 5, Angle: 60, Radius: 30}),
		NewIntersection(StraightParams{Width: 5, Length: 10}),
		NewSmooth(SmoothParams{Width: 5, End: math.Vec3{Z: 3}}),
	}
	for _, seg := range segs {
		c := seg.Clone()
		if c == seg {
			t.Errorf("%s: Clone returned the same value", seg.Kind())
		}
		if c.Kind() != seg.Kind() || c.EndPoint() != seg.EndPoint() {
			t.Errorf("%s: clone differs", seg.Kind())
		}
		c.ShrinkEndPoint(0.5)
		if seg.Kind() != KindSmooth && c.EndPoint() == seg.EndPoint() {
			t.Errorf("%s: shrinking the clone should not move the original", seg.Kind())
		}
	}
}
