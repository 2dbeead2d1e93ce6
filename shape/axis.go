package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidAxis is returned for any axis other than x, y or z.
var ErrInvalidAxis = errors.New("invalid axis, expected one of x, y or z")

// Axis selects one of the three coordinates of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis maps the lowercase letters 'x', 'y' and 'z' onto an Axis. Case
// folding is left to the caller.
func ParseAxis(c rune) (Axis, error) {
	switch c {
	case 'x':
		return AxisX, nil
	case 'y':
		return AxisY, nil
	case 'z':
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, c)
}

// Valid reports whether a is AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
