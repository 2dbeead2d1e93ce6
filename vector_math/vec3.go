package vector_math

// Vec3 is the float32 vector handed to GPU-facing code. Geometry that must stay
// exact lives in Vec3i and Vec3b.
type Vec3 struct {
	X, Y, Z float32
}
