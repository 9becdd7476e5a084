package core

import (
	"unsafe"
)

// Float32Bytes reslices float32 data into raw bytes without copying,
// for submitting vertex data to the driver. The returned slice aliases
// the input and stays valid only while the input does.
func Float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
