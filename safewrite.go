package blobposter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFunc encodes an image to w.
type WriteFunc func(w io.Writer) error

// SafeWrite saves to a stamped filename (see GetFilename) and returns the name used.
func (s Seed) SafeWrite(prefix, ext string, write WriteFunc) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := SafeWrite(fname, write); err != nil {
		return fname, err
	}
	return fname, nil
}

// SafeWrite writes to a temp file next to fname then renames atomically
func SafeWrite(fname string, write WriteFunc) error {
	if filepath.Ext(fname) != ".png" {
		return fmt.Errorf("unsupported file format %q", filepath.Ext(fname))
	}
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	// the temp file must be on the same drive for the rename
	tmpfile, err := os.CreateTemp(dir, "blobposter.*.png")
	if err != nil {
		return err
	}
	if err := write(tmpfile); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return err
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir (and parents) if it is missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	return nil
}
