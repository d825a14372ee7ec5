package execx

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/denokit/denofunc/internal/debugx"
	"github.com/denokit/denofunc/internal/errorsx"
)

func MaybeRun(c *exec.Cmd) error {
	if c == nil {
		return nil
	}

	debugx.Println("---------------", errorsx.Zero(os.Getwd()), "running", c.Dir, "->", c.String(), "---------------")
	return c.Run()
}

// Fallback launches commands with a single retry against a named
// substitute executable resolved from PATH. windows installs expose the
// cloud tooling as cmd shims which CreateProcess refuses to launch
// directly; every other platform propagates the original failure.
type Fallback struct {
	Name    string
	goos    string
	environ func(string) string
}

func NewFallback(name string) Fallback {
	return Fallback{Name: name, goos: runtime.GOOS, environ: os.Getenv}
}

// Run starts the command and awaits completion. when the launch itself
// fails on windows the named fallback is located on PATH, substituted
// as the first argument and retried once.
func (t Fallback) Run(ctx context.Context, cmd *exec.Cmd) (err error) {
	debugx.Println("---------------", "running", cmd.String(), "---------------")

	if err = cmd.Start(); err == nil {
		return cmd.Wait()
	}

	if t.goos != "windows" {
		return errorsx.Wrapf(err, "unable to launch: %s", cmd.Args[0])
	}

	located, lerr := t.locate()
	if lerr != nil {
		return errorsx.Compact(lerr, err)
	}

	debugx.Println("retrying launch with", located)

	retry := exec.CommandContext(ctx, located, cmd.Args[1:]...)
	retry.Dir = cmd.Dir
	retry.Env = cmd.Env
	retry.Stdin = cmd.Stdin
	retry.Stdout = cmd.Stdout
	retry.Stderr = cmd.Stderr

	return retry.Run()
}

func (t Fallback) locate() (_ string, err error) {
	for _, dir := range filepath.SplitList(t.environ("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			if strings.EqualFold(entry.Name(), t.Name) {
				return filepath.Join(dir, entry.Name()), nil
			}
		}
	}

	return "", errorsx.Errorf("could not locate %s on PATH", t.Name)
}
