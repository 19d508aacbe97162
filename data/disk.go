package data

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"testing/fstest"
	"time"
)

//go:embed requests/*.json
var requestFS embed.FS

var FS = make(fstest.MapFS)

func init() {
	err := fs.WalkDir(requestFS, "requests", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		f, err := requestFS.Open(path)
		if err != nil {
			panic(err)
		}

		defer f.Close()

		bytes, err := io.ReadAll(f)
		if err != nil {
			panic(err)
		}

		FS[path] = &fstest.MapFile{
			Data:    bytes,
			Mode:    os.ModePerm,
			ModTime: time.Now(),
		}

		return nil
	})
	if err != nil {
		panic(err)
	}
}
