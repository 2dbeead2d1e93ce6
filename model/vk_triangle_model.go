package model

import (
	"errors"

	"geometry_tool/shape"
	vm "geometry_tool/vector_math"
)

// ErrIncompleteTriangle is returned when a triangle with unset vertices is exported.
var ErrIncompleteTriangle = errors.New("triangle has unset vertices")

// Per-vertex colours, red/green/blue in vertex order.
var triangleColors = [shape.VertexCount]vm.Vec3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// NewTriangleModel packs tri into a single-face mesh.
func NewTriangleModel(name string, tri shape.Triangle) (*Model, error) {
	if !tri.Complete() {
		return nil, ErrIncompleteTriangle
	}

	// 3 * (12 + 12) = 72 Byte
	v := make([]Vertex, shape.VertexCount)
	for i := range v {
		p, _ := tri.Vertex(i)
		v[i] = Vertex{
			Pos:   p.Vec().ToVec3(),
			Color: triangleColors[i],
		}
	}

	id := []uint32{0, 1, 2}

	mesh := NewMesh(v, id)
	return NewModel(mesh, name), nil
}
