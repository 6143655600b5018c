// Package archive gives access to entries of zip containers such as xlsx
// workbooks.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNotFound is returned by ReadEntry when archive has no such entry.
var ErrNotFound = errors.New("entry not found in archive")

// WalkFunc is called for every matching file of the archive. Returned error
// stops the walk and is passed to the caller as is.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every file (not directory) whose name starts with
// prefix, in archive order. Archive with absolute or ".." entry names is
// rejected as a whole.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()
	return walk(&r.Reader, archive, prefix, walkFn)
}

func walk(r *zip.Reader, archive, prefix string, walkFn WalkFunc) error {
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadEntry returns content of the entry with exact name.
func ReadEntry(archive, name string) ([]byte, error) {
	var data []byte
	found := false
	err := Walk(archive, name, func(_ string, f *zip.File) error {
		if f.Name != name || found {
			return nil
		}
		found = true
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err = io.ReadAll(rc)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
