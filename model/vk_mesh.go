package model

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
	}
}
