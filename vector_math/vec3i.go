package vector_math

import "math/big"

// Vec3i is an integer coordinate. Arithmetic on it goes through Vec3b so that
// differences and products never wrap.
type Vec3i struct {
	X, Y, Z int
}

func (v Vec3i) Big() Vec3b {
	return Vec3b{
		X: big.NewInt(int64(v.X)),
		Y: big.NewInt(int64(v.Y)),
		Z: big.NewInt(int64(v.Z)),
	}
}

// ToVec3 converts to the float32 GPU representation.
func (v Vec3i) ToVec3() Vec3 {
	return Vec3{
		X: float32(v.X),
		Y: float32(v.Y),
		Z: float32(v.Z),
	}
}
