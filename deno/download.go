package deno

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/internal/debugx"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/fsx"
	"github.com/denokit/denofunc/internal/httpx"
	"github.com/denokit/denofunc/internal/zipx"
)

// Provision ensures a platform appropriate copy of the runtime binary
// exists under the artifact directory, downloading the version pinned
// release when absent. everything else under the artifact directory and
// any stale script bundle are pruned first.
func Provision(ctx context.Context, c *http.Client, rt *denofunc.Runtime, v semver.Version, platform denofunc.Platform) (err error) {
	var (
		archive *os.File
	)

	target := filepath.FromSlash(rt.RuntimePath(platform))

	prune(rt.BinDir, target)
	errorsx.Log(errorsx.Ignore(os.Remove(rt.BundleFile), os.ErrNotExist))

	if fsx.FileExists(target) {
		debugx.Println("runtime binary present", target)
		return nil
	}

	if err = fsx.MkDirs(0755, filepath.Dir(target)); err != nil {
		return err
	}

	if archive, err = os.CreateTemp("", "deno.*.zip"); err != nil {
		return errorsx.Wrap(err, "unable to create the release archive")
	}
	errorsx.Log(archive.Close())
	defer func() { errorsx.Log(os.Remove(archive.Name())) }()

	if err = httpx.Retrieve(ctx, c, rt.ReleaseURL(v, platform), archive.Name()); err != nil {
		return errorsx.Wrap(err, "unable to download the runtime binary release")
	}

	if err = zipx.Unpack(filepath.Dir(target), archive.Name()); err != nil {
		return errorsx.Wrap(err, "unable to extract the runtime binary release")
	}

	if platform != denofunc.PlatformWindows {
		if err = os.Chmod(target, 0755); err != nil {
			return errorsx.Wrapf(err, "unable to mark the runtime binary executable: %s", target)
		}
	}

	return nil
}

// prune removes everything under the artifact directory except keep.
// best effort, absence is the common case.
func prune(bindir string, keep string) {
	entries, err := os.ReadDir(bindir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		p := filepath.Join(bindir, entry.Name())

		if !entry.IsDir() {
			errorsx.Log(os.Remove(p))
			continue
		}

		nested, err := os.ReadDir(p)
		if err != nil {
			continue
		}

		for _, n := range nested {
			if np := filepath.Join(p, n.Name()); np != keep {
				errorsx.Log(os.RemoveAll(np))
			}
		}

		if p != filepath.Dir(keep) {
			errorsx.Log(os.Remove(p))
		}
	}
}
