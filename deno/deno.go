// Package deno drives the worker runtime binary: version detection,
// ahead of time compilation and script bundling.
package deno

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/execx"
)

// Version detects the installed runtime version from `deno --version`.
func Version(ctx context.Context) (zero semver.Version, err error) {
	var (
		out bytes.Buffer
	)

	cmd := exec.CommandContext(ctx, "deno", "--version")
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err = execx.MaybeRun(cmd); err != nil {
		return zero, errorsx.Wrap(err, "unable to detect the runtime version, is deno installed?")
	}

	return parseVersion(&out)
}

// parseVersion reads the first line of `deno --version` output:
// deno x.y.z (release, x86_64-unknown-linux-gnu)
func parseVersion(r io.Reader) (zero semver.Version, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return zero, errorsx.New("unable to detect the runtime version, no output")
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return zero, errorsx.Errorf("unable to detect the runtime version from '%s'", scanner.Text())
	}

	if zero, err = semver.ParseTolerant(fields[1]); err != nil {
		return zero, errorsx.Wrapf(err, "unable to parse the runtime version '%s'", fields[1])
	}

	return zero, nil
}

// Compile the worker script into a native executable for the platform,
// removing artifacts of any previously selected packaging style first.
func Compile(ctx context.Context, rt *denofunc.Runtime, v semver.Version, platform denofunc.Platform, passthrough ...string) (err error) {
	output := rt.ExecutablePath(platform)

	log.Println("compiling initiated", rt.WorkerScript, "->", output)
	defer log.Println("compiling completed", rt.WorkerScript, "->", output)

	// stale artifacts from a previous style, absence is the common case.
	errorsx.Log(os.RemoveAll(rt.BinDir))
	errorsx.Log(errorsx.Ignore(os.Remove(rt.BundleFile), os.ErrNotExist))

	if err = os.MkdirAll(filepath.Dir(filepath.FromSlash(output)), 0755); err != nil {
		return errorsx.Wrap(err, "unable to create the artifact directory")
	}

	args := []string{"compile", "--target", platform.Target(), "--output", output}
	if rt.Lite(v) {
		args = append(args, "--lite")
	}
	args = append(args, rt.Permissions...)
	args = append(args, passthrough...)
	args = append(args, rt.WorkerScript)

	cmd := exec.CommandContext(ctx, "deno", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return execx.MaybeRun(cmd)
}

// Bundle the worker script into a single file script bundle.
func Bundle(ctx context.Context, rt *denofunc.Runtime) (err error) {
	log.Println("bundling initiated", rt.WorkerScript, "->", rt.BundleFile)
	defer log.Println("bundling completed", rt.WorkerScript, "->", rt.BundleFile)

	cmd := exec.CommandContext(ctx, "deno", "bundle", rt.WorkerScript, rt.BundleFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return execx.MaybeRun(cmd)
}
