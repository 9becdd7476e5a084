// spak packs a directory of shader sources into a spak archive that
// the engine can load at startup.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/teal3d/teal/utility/spak"
)

var (
	dir    = flag.String("dir", ".", "directory to collect shader sources from")
	out    = flag.String("out", "shaders.spak", "archive file to write")
	author = flag.String("author", "", "author recorded in the archive header")
	suffix = flag.String("suffix", ".glsl", "file suffix to include")
)

func main() {
	flag.Parse()

	builder, err := spak.NewBuilder(spak.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		log.Fatalf("spak.NewBuilder(): %s", err)
	}

	var count int
	err = filepath.Walk(*dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), *suffix) {
			return nil
		}

		name, err := filepath.Rel(*dir, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := builder.Add(filepath.ToSlash(name), f); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		log.Fatalf("collecting sources: %s", err)
	}
	if count == 0 {
		log.Fatalf("no %s files under %s", *suffix, *dir)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatalf("os.Create(): %s", err)
	}
	defer outFile.Close()

	written, err := builder.WriteTo(outFile)
	if err != nil {
		log.Fatalf("writing archive: %s", err)
	}
	log.WithFields(log.Fields{
		"entries": count,
		"bytes":   written,
		"archive": *out,
	}).Info("archive written")
}
