package core_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/teal3d/teal/core"
)

func TestFloat32Bytes(t *testing.T) {
	data := []float32{-0.5, 0.25, 1.0}
	raw := core.Float32Bytes(data)

	if len(raw) != len(data)*4 {
		t.Fatalf("len = %d, want %d", len(raw), len(data)*4)
	}
	for i, f := range data {
		got := binary.LittleEndian.Uint32(raw[i*4:])
		if got != math.Float32bits(f) {
			t.Errorf("element %d: bits %#x, want %#x", i, got, math.Float32bits(f))
		}
	}
}

func TestFloat32BytesAliasesInput(t *testing.T) {
	data := []float32{1.0}
	raw := core.Float32Bytes(data)

	data[0] = 2.0
	if binary.LittleEndian.Uint32(raw) != math.Float32bits(2.0) {
		t.Error("returned slice does not alias the input")
	}
}

func TestFloat32BytesEmpty(t *testing.T) {
	if raw := core.Float32Bytes(nil); raw != nil {
		t.Errorf("Float32Bytes(nil) = %v, want nil", raw)
	}
	if raw := core.Float32Bytes([]float32{}); raw != nil {
		t.Errorf("Float32Bytes(empty) = %v, want nil", raw)
	}
}

func BenchmarkFloat32BytesSmall(b *testing.B) {
	data := make([]float32, 100)
	for idx := 0; idx < b.N; idx++ {
		core.Float32Bytes(data)
	}
}

func BenchmarkFloat32BytesMedium(b *testing.B) {
	data := make([]float32, 1000)
	for idx := 0; idx < b.N; idx++ {
		core.Float32Bytes(data)
	}
}

func BenchmarkFloat32BytesBig(b *testing.B) {
	data := make([]float32, 100000)
	for idx := 0; idx < b.N; idx++ {
		core.Float32Bytes(data)
	}
}
