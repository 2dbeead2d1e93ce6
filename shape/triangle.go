package shape

import (
	"errors"
	"fmt"
	"strings"

	vm "geometry_tool/vector_math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrVertexIndex is returned when a vertex slot outside 0..2 is addressed.
var ErrVertexIndex = errors.New("vertex index out of range, expected 0, 1 or 2")

// VertexCount is the number of vertex slots in a Triangle.
const VertexCount = 3

var vertexLabels = [VertexCount]string{"First", "Second", "Third"}

// Triangle holds its three vertices by value, so it is their only owner.
// A slot that was never assigned is unset; the zero Triangle has all three
// slots unset. Operations on unset slots degrade instead of failing: Translate
// skips them and CalcArea reports zero.
type Triangle struct {
	vertices [VertexCount]Point
	set      [VertexCount]bool
}

// NewTriangle builds a complete Triangle from copies of a, b and c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{
		vertices: [VertexCount]Point{a, b, c},
		set:      [VertexCount]bool{true, true, true},
	}
}

// SetVertex stores a copy of p in slot i and marks the slot set.
func (t *Triangle) SetVertex(i int, p Point) error {
	if i < 0 || i >= VertexCount {
		return fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	t.vertices[i] = p
	t.set[i] = true
	return nil
}

// Vertex returns a copy of slot i and whether the slot is set.
func (t Triangle) Vertex(i int) (Point, bool) {
	if i < 0 || i >= VertexCount {
		return Point{}, false
	}
	return t.vertices[i], t.set[i]
}

// Complete reports whether all three slots are set.
func (t Triangle) Complete() bool {
	return t.set[0] && t.set[1] && t.set[2]
}

// Translate moves every set vertex by d along axis, first to third. The axis
// is checked up front so an invalid one changes nothing.
func (t *Triangle) Translate(d int, axis Axis) error {
	if !axis.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	for i := range t.vertices {
		if !t.set[i] {
			continue
		}
		if err := t.vertices[i].Translate(d, axis); err != nil {
			return err
		}
	}
	return nil
}

// TranslateRune is Translate with the axis given as a letter, see ParseAxis.
func (t *Triangle) TranslateRune(d int, axis rune) error {
	a, err := ParseAxis(axis)
	if err != nil {
		return err
	}
	return t.Translate(d, a)
}

// CalcArea returns half the magnitude of AB x AC. The edge vectors and the
// cross product are exact at any coordinate size; only the final norm is
// floating point. An incomplete triangle has area 0.
func (t Triangle) CalcArea() float64 {
	if !t.Complete() {
		return 0.0
	}
	return 0.5 * t.cross().Len()
}

// Normal is the unit face normal following the right hand rule over the
// vertex order. Incomplete or collinear triangles yield the zero vector.
func (t Triangle) Normal() mgl32.Vec3 {
	if !t.Complete() {
		return mgl32.Vec3{}
	}
	c := t.cross()
	if c.IsZero() {
		return mgl32.Vec3{}
	}
	x, y, z := c.Unit()
	return mgl32.Vec3{float32(x), float32(y), float32(z)}.Normalize()
}

// cross is AB x AC over the three vertex slots.
func (t Triangle) cross() vm.Vec3b {
	a := t.vertices[0].Vec().Big()
	ab := t.vertices[1].Vec().Big().Sub(a)
	ac := t.vertices[2].Vec().Big().Sub(a)
	return ab.Cross(ac)
}

// Display lists the three vertices under a heading, one per line, and ends
// with a blank line. Unset slots print as "(unset)".
func (t Triangle) Display() string {
	var sb strings.Builder
	sb.WriteString("- Triangle's Coordinates - \n")
	for i, label := range vertexLabels {
		sb.WriteString(label)
		sb.WriteString(" Vertex Coordinate: ")
		if t.set[i] {
			sb.WriteString(t.vertices[i].Display())
		} else {
			sb.WriteString("(unset)")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t Triangle) String() string {
	var v [VertexCount]string
	for i := range v {
		v[i] = "(unset)"
		if t.set[i] {
			v[i] = t.vertices[i].Display()
		}
	}
	return fmt.Sprintf("Triangle[%s %s %s]", v[0], v[1], v[2])
}
