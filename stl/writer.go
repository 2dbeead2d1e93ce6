package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"geometry_tool/shape"
)

// MaxExactCoordinate is the largest magnitude a coordinate can have and still
// survive the float32 vertex encoding unchanged.
const MaxExactCoordinate = 1 << 24

// ErrPrecision is returned when a vertex coordinate exceeds MaxExactCoordinate.
var ErrPrecision = errors.New("coordinate not exactly representable as float32")

func WriteStlFile(path string, header string, tris ...shape.Triangle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteStl(f, header, tris...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %d triangle(s) to stl file %s", len(tris), path)
	return nil
}

// WriteStl encodes tris as a binary STL stream. The header is cut to 80
// bytes. Incomplete triangles and coordinates beyond MaxExactCoordinate
// cannot be written, so anything written reads back identically.
func WriteStl(w io.Writer, header string, tris ...shape.Triangle) error {
	for i, tri := range tris {
		if !tri.Complete() {
			return fmt.Errorf("triangle %d has unset vertices", i)
		}
		for v := 0; v < shape.VertexCount; v++ {
			p, _ := tri.Vertex(v)
			for _, c := range [3]int{p.X(), p.Y(), p.Z()} {
				if c > MaxExactCoordinate || c < -MaxExactCoordinate {
					return fmt.Errorf("triangle %d vertex %d: %w: %d", i, v, ErrPrecision, c)
				}
			}
		}
	}

	bw := bufio.NewWriter(w)
	var h [headerSize]byte
	copy(h[:], header)
	if _, err := bw.Write(h[:]); err != nil {
		return err
	}

	buf := make([]byte, facetSize)
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(tris)))
	if _, err := bw.Write(buf[:4]); err != nil {
		return err
	}

	for _, tri := range tris {
		n := tri.Normal()
		putFloat32s(buf[0:12], n.X(), n.Y(), n.Z())
		for i := 0; i < shape.VertexCount; i++ {
			p, _ := tri.Vertex(i)
			off := 12 + i*12
			putFloat32s(buf[off:off+12], float32(p.X()), float32(p.Y()), float32(p.Z()))
		}
		binary.LittleEndian.PutUint16(buf[48:50], 0)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func putFloat32s(dst []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}
