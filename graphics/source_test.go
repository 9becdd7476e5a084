package graphics_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/teal3d/teal/graphics"
	"github.com/teal3d/teal/utility/spak"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pass.vert.glsl"), []byte(vertexSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	src := graphics.FileSource{Dir: dir}
	got, err := src.Source("pass.vert.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if got != vertexSrc {
		t.Errorf("Source() = %q", got)
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := graphics.FileSource{Dir: t.TempDir()}
	_, err := src.Source("gone.frag.glsl")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not match fs.ErrNotExist", err)
	}
}

func packArchive(t *testing.T, entries map[string]string) *spak.Archive {
	t.Helper()

	builder, err := spak.NewBuilder(spak.Header{
		Author:      "tests",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	for name, body := range entries {
		if err := builder.Add(name, strings.NewReader(body)); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if _, err := builder.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	archive, err := spak.Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return archive
}

func TestPackSource(t *testing.T) {
	archive := packArchive(t, map[string]string{
		"pass.vert.glsl": vertexSrc,
		"fill.frag.glsl": fragmentSrc,
	})
	src := graphics.NewPackSource(archive)

	got, err := src.Source("fill.frag.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if got != fragmentSrc {
		t.Errorf("Source() = %q", got)
	}
}

func TestPackSourceMissing(t *testing.T) {
	archive := packArchive(t, map[string]string{"pass.vert.glsl": vertexSrc})
	src := graphics.NewPackSource(archive)

	_, err := src.Source("gone.frag.glsl")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not match fs.ErrNotExist", err)
	}
}
