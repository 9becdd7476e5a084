// Copyright (c) 2026 teal3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package spak

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
)

// Open opens the spak archive from r. It will also check that the
// file actually is a spak archive, and return an error when it is not.
func Open(r io.ReaderAt) (*Archive, error) {
	magicBytes := make([]byte, MagicLength)
	if num, err := r.ReadAt(magicBytes, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(magicBytes, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToInt64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Archive{
		reader:   r,
		header:   header,
		dataBase: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Archive provides concurrent io for a spak file, and can provide an
// io.Reader for each entry separately to perform actions on.
type Archive struct {
	reader   io.ReaderAt
	header   Header
	dataBase int64
}

// Header returns the decoded archive header.
func (a *Archive) Header() Header {
	return a.header
}

// Index returns the entry index of the archive.
func (a *Archive) Index() []IndexEntry {
	return a.header.Index
}

func (a *Archive) entry(name string) (IndexEntry, bool) {
	for _, e := range a.header.Index {
		if e.Name == name {
			return e, true
		}
	}
	return IndexEntry{}, false
}

// ReadAll returns the entire decompressed contents of the entry with
// the given name.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, r.entry.Size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Open returns a Reader for an entry in the Archive.
func (a *Archive) Open(name string) (*Reader, error) {
	e, ok := a.entry(name)
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.dataBase+e.Offset, e.CompressedSize)
	return &Reader{
		entry: e,
		lz:    lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single entry in an Archive. Abstracts away
// the location that needs to be known.
type Reader struct {
	entry IndexEntry
	lz    *lz4.Reader
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.lz.Read(p)
}

// Size returns the decompressed size of the entry.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Name returns the entry name.
func (r *Reader) Name() string {
	return r.entry.Name
}
