// Copyright (c) 2026 teal3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package spak is an api for an lz4 backed shader pack format.
// Its purpose is to ship a set of shader sources as one file that can
// be memory mapped, so (unlike tar) it knows where all the entries are
// located before they're read. The archive itself is not compressed in
// any form, rather every entry is individually compressed, so it can
// be immediately read from its place and decompressed on the fly. This
// somewhat compromises space efficiency in exchange for getting
// sources from disk to the build pipeline as fast as possible. It can
// be read from concurrently.
package spak

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not a spak archive")
	ErrTempFail   = errors.New("temporary folder or file operation failed")
	ErrNotFound   = fmt.Errorf("no such entry: %w", fs.ErrNotExist)
)

// Sizes relevant to the header of the file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 16
)

var magic = [MagicLength]byte{'S', 'P', 'K', 0}

// IndexEntry is info for one entry in the archive index. Offset is
// relative to the start of the data section that follows the header.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the file header for spak files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	numBytes := make([]byte, HeaderSizeNumberLength)
	binary.PutVarint(numBytes, num)
	return numBytes
}

func binaryToInt64(bts []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(bts))
	if err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(bts))
	return dec.Decode(obj)
}
