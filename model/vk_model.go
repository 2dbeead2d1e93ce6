package model

import (
	"geometry_tool/tooling"
	"unsafe"
)

type Model struct {
	Mesh *Mesh
	Name string
}

func NewModel(m *Mesh, n string) *Model {
	return &Model{
		Name: n,
		Mesh: m,
	}
}

// GetVBufferSize returns the size required for keeping this model's vertices in device memory.
func (m *Model) GetVBufferSize() int {
	return len(m.Mesh.Vertices) * int(unsafe.Sizeof(Vertex{}))
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model, laid out as
// described by GetVertexAttributeDescriptions.
func (m *Model) GetVBufferBytes() ([]byte, error) {
	return tooling.RawBytes(m.Mesh.Vertices)
}

// GetIdxBufferSize returns the size required for keeping the index buffer in device memory.
func (m *Model) GetIdxBufferSize() int {
	return int(unsafe.Sizeof(uint32(0))) * len(m.Mesh.VIndices)
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this model.
func (m *Model) GetIdxBufferBytes() ([]byte, error) {
	return tooling.RawBytes(m.Mesh.VIndices)
}
