package vector_math

import "math/big"

// Vec3b is an arbitrary precision integer vector. Results are always freshly
// allocated, operands are never modified.
type Vec3b struct {
	X, Y, Z *big.Int
}

func (v Vec3b) Sub(w Vec3b) Vec3b {
	return Vec3b{
		X: new(big.Int).Sub(v.X, w.X),
		Y: new(big.Int).Sub(v.Y, w.Y),
		Z: new(big.Int).Sub(v.Z, w.Z),
	}
}

func (v Vec3b) Cross(w Vec3b) Vec3b {
	return Vec3b{
		X: mulSub(v.Y, w.Z, v.Z, w.Y),
		Y: mulSub(v.Z, w.X, v.X, w.Z),
		Z: mulSub(v.X, w.Y, v.Y, w.X),
	}
}

// mulSub returns a*b - c*d.
func mulSub(a, b, c, d *big.Int) *big.Int {
	l := new(big.Int).Mul(a, b)
	return l.Sub(l, new(big.Int).Mul(c, d))
}

func (v Vec3b) Dot(w Vec3b) *big.Int {
	r := new(big.Int).Mul(v.X, w.X)
	r.Add(r, new(big.Int).Mul(v.Y, w.Y))
	return r.Add(r, new(big.Int).Mul(v.Z, w.Z))
}

func (v Vec3b) IsZero() bool {
	return v.X.Sign() == 0 && v.Y.Sign() == 0 && v.Z.Sign() == 0
}

// Len is the Euclidean norm. The sum of squares is exact; only the square root
// is rounded, once, to float64.
func (v Vec3b) Len() float64 {
	l, _ := v.bigLen().Float64()
	return l
}

func (v Vec3b) bigLen() *big.Float {
	sq := new(big.Float).SetInt(v.Dot(v))
	return new(big.Float).Sqrt(sq)
}

// Unit returns the components of v divided by its length. The zero vector
// yields zeros.
func (v Vec3b) Unit() (x, y, z float64) {
	if v.IsZero() {
		return 0, 0, 0
	}
	l := v.bigLen()
	div := func(c *big.Int) float64 {
		f, _ := new(big.Float).Quo(new(big.Float).SetInt(c), l).Float64()
		return f
	}
	return div(v.X), div(v.Y), div(v.Z)
}
