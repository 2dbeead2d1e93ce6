package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func rightTriangle() Triangle {
	return NewTriangle(NewPoint(0, 0, 0), NewPoint(4, 0, 0), NewPoint(0, 3, 0))
}

func TestCalcArea(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want float64
	}{
		{"legs 4 and 3", rightTriangle(), 6.0},
		{"unit", NewTriangle(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0)), 0.5},
		{"collinear", NewTriangle(NewPoint(0, 0, 0), NewPoint(1, 1, 1), NewPoint(2, 2, 2)), 0},
		{"yz plane", NewTriangle(NewPoint(7, 0, 0), NewPoint(7, 2, 0), NewPoint(7, 0, 2)), 2.0},
		{"skew", NewTriangle(NewPoint(1, 0, 0), NewPoint(0, 1, 0), NewPoint(0, 0, 1)), math.Sqrt(3) / 2},
		// products beyond int64
		{"legs 2^32", NewTriangle(NewPoint(0, 0, 0), NewPoint(1<<32, 0, 0), NewPoint(0, 1<<32, 0)), math.Ldexp(1, 63)},
		{"int64 extremes", NewTriangle(
			NewPoint(math.MinInt64, 0, 0),
			NewPoint(math.MaxInt64, 0, 0),
			NewPoint(math.MinInt64, math.MaxInt64, 0),
		), 0.5 * (math.Ldexp(1, 64) - 1) * (math.Ldexp(1, 63) - 1)},
	}
	for _, tc := range tests {
		if got := tc.tri.CalcArea(); math.Abs(got-tc.want) > 1e-12*math.Max(1, tc.want) {
			t.Errorf("%s: area should be %g but was %g", tc.name, tc.want, got)
		}
	}
}

func TestCalcAreaIncomplete(t *testing.T) {
	var tri Triangle
	if a := tri.CalcArea(); a != 0.0 {
		t.Errorf("default triangle should have area 0, got %f", a)
	}
	_ = tri.SetVertex(0, NewPoint(0, 0, 0))
	_ = tri.SetVertex(1, NewPoint(4, 0, 0))
	if a := tri.CalcArea(); a != 0.0 {
		t.Errorf("triangle with an unset vertex should have area 0, got %f", a)
	}
	_ = tri.SetVertex(2, NewPoint(0, 3, 0))
	if a := tri.CalcArea(); a != 6.0 {
		t.Errorf("completed triangle should have area 6, got %f", a)
	}
}

func TestTriangleTranslate(t *testing.T) {
	tri := rightTriangle()
	if err := tri.Translate(5, AxisX); err != nil {
		t.Fatalf("Translate failed: %s", err)
	}
	want := []Point{NewPoint(5, 0, 0), NewPoint(9, 0, 0), NewPoint(5, 3, 0)}
	for i, w := range want {
		if v, _ := tri.Vertex(i); v != w {
			t.Errorf("vertex %d should be %s, was %s", i, w, v)
		}
	}
	if a := tri.CalcArea(); a != 6.0 {
		t.Errorf("translation changed the area to %f", a)
	}
}

// TestTranslateCommutesWithPoints checks Triangle.Translate against translating the vertices one by one
func TestTranslateCommutesWithPoints(t *testing.T) {
	a, b, c := NewPoint(3, -1, 8), NewPoint(-6, 2, 0), NewPoint(1, 1, -9)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, d := range []int{-13, 0, 1, 250} {
			tri := NewTriangle(a, b, c)
			if err := tri.Translate(d, axis); err != nil {
				t.Fatalf("Translate(%d, %s) failed: %s", d, axis, err)
			}
			pa, pb, pc := a, b, c
			_ = pa.Translate(d, axis)
			_ = pb.Translate(d, axis)
			_ = pc.Translate(d, axis)
			if tri != NewTriangle(pa, pb, pc) {
				t.Errorf("Translate(%d, %s) gave %s, expected %s", d, axis, tri, NewTriangle(pa, pb, pc))
			}
			if got, want := tri.CalcArea(), NewTriangle(a, b, c).CalcArea(); got != want {
				t.Errorf("Translate(%d, %s) changed area from %f to %f", d, axis, want, got)
			}
		}
	}
}

func TestTriangleTranslateInvalidAxis(t *testing.T) {
	tri := rightTriangle()
	if err := tri.TranslateRune(3, 'q'); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
	if err := tri.Translate(3, Axis(-1)); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
	if tri != rightTriangle() {
		t.Errorf("invalid translation must not move any vertex, got %s", tri)
	}
}

func TestTriangleTranslateSkipsUnset(t *testing.T) {
	var tri Triangle
	_ = tri.SetVertex(1, NewPoint(1, 1, 1))
	if err := tri.Translate(2, AxisY); err != nil {
		t.Fatalf("Translate on a partial triangle failed: %s", err)
	}
	if v, ok := tri.Vertex(1); !ok || v != NewPoint(1, 3, 1) {
		t.Errorf("set vertex should be translated, got %s (set %v)", v, ok)
	}
	for _, i := range []int{0, 2} {
		if v, ok := tri.Vertex(i); ok || v != (Point{}) {
			t.Errorf("unset vertex %d should stay unset and untouched, got %s (set %v)", i, v, ok)
		}
	}
}

func TestSetVertexOutOfRange(t *testing.T) {
	var tri Triangle
	for _, i := range []int{-1, 3} {
		if err := tri.SetVertex(i, NewPoint(1, 1, 1)); !errors.Is(err, ErrVertexIndex) {
			t.Errorf("SetVertex(%d) should fail with ErrVertexIndex, got %v", i, err)
		}
		if _, ok := tri.Vertex(i); ok {
			t.Errorf("Vertex(%d) should report unset", i)
		}
	}
}

func TestTriangleOwnsCopies(t *testing.T) {
	a := NewPoint(0, 0, 0)
	tri := NewTriangle(a, NewPoint(4, 0, 0), NewPoint(0, 3, 0))
	_ = a.Translate(100, AxisZ)
	if v, _ := tri.Vertex(0); v != NewPoint(0, 0, 0) {
		t.Errorf("mutating the caller's point leaked into the triangle: %s", v)
	}
}

func TestTriangleDisplay(t *testing.T) {
	want := "- Triangle's Coordinates - \n" +
		"First Vertex Coordinate: (0, 0, 0)\n" +
		"Second Vertex Coordinate: (4, 0, 0)\n" +
		"Third Vertex Coordinate: (0, 3, 0)\n" +
		"\n"
	if got := rightTriangle().Display(); got != want {
		t.Errorf("unexpected display:\n%q\nexpected:\n%q", got, want)
	}

	var partial Triangle
	_ = partial.SetVertex(0, NewPoint(1, 2, 3))
	want = "- Triangle's Coordinates - \n" +
		"First Vertex Coordinate: (1, 2, 3)\n" +
		"Second Vertex Coordinate: (unset)\n" +
		"Third Vertex Coordinate: (unset)\n" +
		"\n"
	if got := partial.Display(); got != want {
		t.Errorf("unexpected display of partial triangle:\n%q", got)
	}
}

func TestNormal(t *testing.T) {
	n := rightTriangle().Normal()
	if !n.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("normal of an XY triangle should be +z, got %v", n)
	}
	flipped := NewTriangle(NewPoint(0, 0, 0), NewPoint(0, 3, 0), NewPoint(4, 0, 0))
	if n := flipped.Normal(); !n.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("reversed winding should give -z, got %v", n)
	}
	var empty Triangle
	if n := empty.Normal(); n.Len() != 0 {
		t.Errorf("incomplete triangle should have zero normal, got %v", n)
	}
	huge := NewTriangle(NewPoint(0, 0, 0), NewPoint(1<<40, 0, 0), NewPoint(0, 1<<40, 0))
	if n := huge.Normal(); !n.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("normal of a large XY triangle should be +z, got %v", n)
	}
	line := NewTriangle(NewPoint(0, 0, 0), NewPoint(1, 1, 1), NewPoint(2, 2, 2))
	if n := line.Normal(); n.Len() != 0 {
		t.Errorf("collinear triangle should have zero normal, got %v", n)
	}
}

func TestTriangleString(t *testing.T) {
	var tri Triangle
	_ = tri.SetVertex(1, NewPoint(0, 0, 0))
	if s := tri.String(); s != "Triangle[(unset) (0, 0, 0) (unset)]" {
		t.Errorf("unset slots should be marked, got %q", s)
	}
	if s := rightTriangle().String(); s != "Triangle[(0, 0, 0) (4, 0, 0) (0, 3, 0)]" {
		t.Errorf("unexpected string %q", s)
	}
}
