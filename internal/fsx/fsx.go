package fsx

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/denokit/denofunc/internal/errorsx"
)

// FileExists returns true IFF a non-directory file exists at the provided path.
func FileExists(path string) bool {
	info, err := os.Stat(path)

	if os.IsNotExist(err) {
		return false
	}

	if info.IsDir() {
		return false
	}

	return true
}

func MkDirs(perm fs.FileMode, paths ...string) (err error) {
	for _, p := range paths {
		if err = os.MkdirAll(p, perm); err != nil {
			return errorsx.Wrapf(err, "unable to create directory: %s", p)
		}
	}

	return nil
}

// DirIsEmpty reports whether the directory contains no entries. reading
// stops at the first entry found.
func DirIsEmpty(path string) (_ bool, err error) {
	var (
		d *os.File
	)

	if d, err = os.Open(path); err != nil {
		return false, errorsx.Wrapf(err, "unable to open directory: %s", path)
	}
	defer d.Close()

	if _, err = d.Readdirnames(1); err == io.EOF {
		return true, nil
	}

	return false, err
}

// Flatten moves every entry of the single top level directory within
// root up into root itself and removes the emptied directory.
func Flatten(root string) (err error) {
	var (
		entries []os.DirEntry
	)

	if entries, err = os.ReadDir(root); err != nil {
		return errorsx.Wrapf(err, "unable to read directory: %s", root)
	}

	if len(entries) != 1 || !entries[0].IsDir() {
		return errorsx.Errorf("expected a single directory within %s", root)
	}

	top := filepath.Join(root, entries[0].Name())

	if entries, err = os.ReadDir(top); err != nil {
		return errorsx.Wrapf(err, "unable to read directory: %s", top)
	}

	for _, entry := range entries {
		if err = os.Rename(filepath.Join(top, entry.Name()), filepath.Join(root, entry.Name())); err != nil {
			return errorsx.Wrapf(err, "unable to move entry: %s", entry.Name())
		}
	}

	return errorsx.Wrapf(os.Remove(top), "unable to remove directory: %s", top)
}
