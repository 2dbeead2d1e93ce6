package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"geometry_tool/shape"
	vm "geometry_tool/vector_math"
)

const (
	headerSize = 80
	facetSize  = 50
)

// ErrTruncated is returned when the facet data is shorter than the facet count promises.
var ErrTruncated = errors.New("stl data truncated")

// ErrCoordinate is returned for a vertex coordinate that is NaN, infinite or
// does not fit an int64.
var ErrCoordinate = errors.New("stl vertex coordinate out of range")

func ReadStlFile(path string) ([]shape.Triangle, error) {
	log.Printf("Reading stl file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStl(f)
}

// ReadStl decodes a binary STL stream. Vertex coordinates are rounded to the
// nearest integer; facet normals are ignored and recomputed on write.
func ReadStl(r io.Reader) ([]shape.Triangle, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b) < headerSize+4 {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(b), headerSize+4)
	}
	header := bytes.TrimRight(b[:headerSize], "\x00 ")
	tCnt := binary.LittleEndian.Uint32(b[headerSize : headerSize+4])
	body := b[headerSize+4:]
	if uint64(len(body)) < uint64(tCnt)*facetSize {
		return nil, fmt.Errorf("%w: %d facets announced, %d bytes of facet data", ErrTruncated, tCnt, len(body))
	}
	tris, err := toTriangles(body, tCnt)
	if err != nil {
		return nil, err
	}
	log.Printf("Successfully read stl data, Header: '%s', Triangle Count: %d", header, tCnt)
	return tris, nil
}

func toTriangles(bytes []byte, triangleCnt uint32) ([]shape.Triangle, error) {
	tris := make([]shape.Triangle, 0, triangleCnt)
	for i := 0; i < int(triangleCnt)*facetSize; i += facetSize {
		// bytes[i : i+12] is the normal, bytes[i+48 : i+50] the attribute count
		var tri shape.Triangle
		for v := 0; v < shape.VertexCount; v++ {
			off := i + 12 + v*12
			p, err := toPoint(bytes[off : off+12])
			if err != nil {
				return nil, fmt.Errorf("facet %d vertex %d: %w", i/facetSize, v, err)
			}
			_ = tri.SetVertex(v, p)
		}
		tris = append(tris, tri)
	}
	return tris, nil
}

func toPoint(bytes []byte) (shape.Point, error) {
	var c [3]int
	for i := range c {
		f := float64(toFloat32(bytes[i*4 : i*4+4]))
		// 2^63 is the first float above MaxInt64
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(math.Round(f)) >= math.Ldexp(1, 63) {
			return shape.Point{}, fmt.Errorf("%w: %g", ErrCoordinate, f)
		}
		c[i] = int(math.Round(f))
	}
	return shape.PointFromVec(vm.Vec3i{X: c[0], Y: c[1], Z: c[2]}), nil
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	float := math.Float32frombits(bits)
	return float
}
