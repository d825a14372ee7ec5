package zipx

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Unpack the zip archive at the given path into the root directory.
func Unpack(root string, archive string) (err error) {
	var (
		zr *zip.ReadCloser
	)

	if err = os.MkdirAll(root, 0700); err != nil {
		return errors.Wrap(err, "unable to ensure root directory")
	}

	if zr, err = zip.OpenReader(archive); err != nil {
		return errors.Wrapf(err, "failed to open archive: %s", archive)
	}
	defer zr.Close()

	for _, f := range zr.File {
		// the target location where the dir/file should be created
		target := filepath.Join(root, filepath.FromSlash(f.Name))

		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", target)
			}
			continue
		}

		writefile := func() (err error) {
			var (
				src io.ReadCloser
				dst *os.File
			)

			if err = os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", filepath.Dir(target))
			}

			if src, err = f.Open(); err != nil {
				return errors.Wrapf(err, "failed to open archived file: %s", f.Name)
			}
			defer src.Close()

			if dst, err = os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, f.Mode().Perm()|0600); err != nil {
				return errors.Wrapf(err, "failed to open file: %s", target)
			}
			defer dst.Close()

			// copy over contents
			if _, err = io.Copy(dst, src); err != nil {
				return errors.Wrapf(err, "failed to copy contents: %s", target)
			}

			return nil
		}

		if err = writefile(); err != nil {
			return err
		}
	}

	return nil
}
