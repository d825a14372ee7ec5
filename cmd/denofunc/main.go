package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/cmd/cmderrors"
	"github.com/denokit/denofunc/cmd/cmdopts"
	"github.com/denokit/denofunc/internal/envx"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/osx"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/willabides/kongplete"
)

type commands struct {
	cmdopts.Global
	Version            cmdopts.Version              `cmd:"" help:"display versioning information"`
	Init               initialize                   `cmd:"" help:"scaffold a new project from the template repository"`
	Start              start                        `cmd:"" help:"run the functions host locally"`
	Host               host                         `cmd:"" help:"functions host commands"`
	GenerateExe        generateexe                  `cmd:"" name:"generateexe" help:"compile the worker into a native executable"`
	Publish            publish                      `cmd:"" help:"package the worker and upload it to a function app"`
	Help               usage                        `cmd:"" default:"1" help:"display usage information"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
}

func newparser(shellcli *commands, rt *denofunc.Runtime) *kong.Kong {
	return kong.Must(
		shellcli,
		kong.Name("denofunc"),
		kong.Description("deployment cli for deno workers on the functions platform"),
		kong.Vars{
			"vars_cwd":          osx.Getwd("."),
			"vars_os":           runtime.GOOS,
			"vars_template_ref": plumbing.Main.Short(),
		},
		kong.UsageOnError(),
		kong.Bind(
			&shellcli.Global,
			rt,
		),
	)
}

func main() {
	var (
		err      error
		ctx      *kong.Context
		shellcli commands
	)

	shellcli.Cleanup = &sync.WaitGroup{}
	shellcli.Context, shellcli.Shutdown = context.WithCancelCause(context.Background())
	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	go cmdopts.Cleanup(shellcli.Context, shellcli.Shutdown, shellcli.Cleanup, func() {
		log.Println("waiting for systems to shutdown")
	}, os.Kill, os.Interrupt)

	rt := denofunc.NewRuntime()
	parser := newparser(&shellcli, rt)

	// Run kongplete.Complete to handle completion requests
	kongplete.Complete(
		parser,
	)

	args, allowed := splitAllowFlags(os.Args[1:])

	if ctx, err = parser.Parse(args); err != nil {
		log.Println(cmderrors.Sprint(err))
		if ctx, err = parser.Parse([]string{"help"}); err == nil {
			errorsx.Log(ctx.PrintUsage(false))
		}
		os.Exit(0)
	}

	shellcli.Publish.Allow = append(shellcli.Publish.Allow, allowed...)

	if envx.Boolean(false, denofunc.EnvLogsDebug) {
		envx.Debug(os.Environ()...)
	}

	if err = ctx.Run(); err != nil {
		log.Println(cmderrors.Sprint(err))
		os.Exit(cmderrors.Code(err))
	}

	shellcli.Shutdown(nil)
	shellcli.Cleanup.Wait()
}
