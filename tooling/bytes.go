package tooling

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// RawBytes writes a given object as its little-endian byte representation voiding all type information in
// the process. p has to be a fixed-size value or a slice of fixed-size values, see binary.Write.
func RawBytes(p interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		return nil, fmt.Errorf("binary.Write failed: %w", err)
	}
	return buf.Bytes(), nil
}
