package tooling

import (
	"bytes"
	"testing"
)

func TestRawBytes(t *testing.T) {
	b, err := RawBytes([]uint32{1, 0x01020304})
	if err != nil {
		t.Fatalf("RawBytes failed: %s", err)
	}
	want := []byte{1, 0, 0, 0, 4, 3, 2, 1}
	if !bytes.Equal(b, want) {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestRawBytesRejectsVariableSize(t *testing.T) {
	if _, err := RawBytes([]string{"no"}); err == nil {
		t.Errorf("strings have no fixed size and should be rejected")
	}
}
