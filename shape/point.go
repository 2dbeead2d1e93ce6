package shape

import (
	"fmt"

	vm "geometry_tool/vector_math"
)

// Point is a 3D integer coordinate. The zero value is the origin.
type Point struct {
	x, y, z int
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z int) Point {
	return Point{x: x, y: y, z: z}
}

func (p Point) X() int { return p.x }
func (p Point) Y() int { return p.y }
func (p Point) Z() int { return p.z }

// Translate moves the point by d along axis. An invalid axis returns
// ErrInvalidAxis and leaves every coordinate untouched.
func (p *Point) Translate(d int, axis Axis) error {
	switch axis {
	case AxisX:
		p.x += d
	case AxisY:
		p.y += d
	case AxisZ:
		p.z += d
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	return nil
}

// TranslateRune is Translate with the axis given as a letter, see ParseAxis.
func (p *Point) TranslateRune(d int, axis rune) error {
	a, err := ParseAxis(axis)
	if err != nil {
		return err
	}
	return p.Translate(d, a)
}

// Display formats the point as "(x, y, z)".
func (p Point) Display() string {
	return fmt.Sprintf("(%d, %d, %d)", p.x, p.y, p.z)
}

func (p Point) String() string {
	return p.Display()
}

// Vec returns the coordinate as an integer vector.
func (p Point) Vec() vm.Vec3i {
	return vm.Vec3i{X: p.x, Y: p.y, Z: p.z}
}

// PointFromVec is the inverse of Point.Vec.
func PointFromVec(v vm.Vec3i) Point {
	return Point{x: v.X, y: v.Y, z: v.Z}
}
