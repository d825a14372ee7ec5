// Package scaffold initializes a project directory from the template
// repository archive.
package scaffold

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/fsx"
	"github.com/denokit/denofunc/internal/httpx"
	"github.com/denokit/denofunc/internal/zipx"
)

// Clone downloads the template archive into dir, stripping the archive's
// top level folder. dir must be empty.
func Clone(ctx context.Context, c *http.Client, dir string, archiveurl string) (err error) {
	var (
		empty   bool
		archive *os.File
	)

	if empty, err = fsx.DirIsEmpty(dir); err != nil {
		return errorsx.Wrap(err, "unable to inspect the project directory")
	}

	if !empty {
		return errorsx.Errorf("the directory %s must be empty to initialize a project", dir)
	}

	if archive, err = os.CreateTemp("", "template.*.zip"); err != nil {
		return errorsx.Wrap(err, "unable to create the template archive")
	}
	errorsx.Log(archive.Close())
	defer func() { errorsx.Log(os.Remove(archive.Name())) }()

	if err = httpx.Retrieve(ctx, c, archiveurl, archive.Name()); err != nil {
		return errorsx.Wrap(err, "unable to download the template archive")
	}

	if err = zipx.Unpack(dir, archive.Name()); err != nil {
		return errorsx.Wrap(err, "unable to extract the template archive")
	}

	if err = fsx.Flatten(dir); err != nil {
		return errorsx.Wrapf(err, "unable to restructure the extracted template: %s", filepath.Clean(dir))
	}

	return nil
}
