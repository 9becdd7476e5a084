package graphics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teal3d/teal/utility/spak"
)

// SourceProvider supplies shader source text by name. Missing sources
// are reported with an error matching fs.ErrNotExist.
type SourceProvider interface {
	Source(name string) (string, error)
}

// FileSource resolves source names as filesystem paths, relative to
// Dir when set.
type FileSource struct {
	Dir string
}

// Source implements SourceProvider
func (s FileSource) Source(name string) (string, error) {
	path := name
	if s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shader source %s: %w", path, err)
	}
	return string(data), nil
}

// NewPackSource creates a provider reading sources from a spak
// archive.
func NewPackSource(archive *spak.Archive) PackSource {
	return PackSource{archive: archive}
}

// PackSource reads shader sources from a spak archive.
type PackSource struct {
	archive *spak.Archive
}

// Source implements SourceProvider
func (s PackSource) Source(name string) (string, error) {
	data, err := s.archive.ReadAll(name)
	if err != nil {
		return "", fmt.Errorf("shader source %s: %w", name, err)
	}
	return string(data), nil
}
