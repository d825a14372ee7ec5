package main

import (
	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/cmd/cmdopts"
	"github.com/denokit/denofunc/deno"
)

type generateexe struct {
	Platform string   `arg:"" optional:"" help:"target platform to compile for" default:"${vars_os}"`
	Allow    []string `name:"allow" help:"additional permissions granted to the worker"`
}

func (t generateexe) Run(gctx *cmdopts.Global, rt *denofunc.Runtime) (err error) {
	var (
		v        semver.Version
		platform denofunc.Platform
	)

	if platform, err = denofunc.ParsePlatform(t.Platform); err != nil {
		return err
	}

	if v, err = deno.Version(gctx.Context); err != nil {
		return err
	}

	if _, err = rt.ResolveStyle(string(denofunc.StyleExecutable), v); err != nil {
		return err
	}

	return deno.Compile(gctx.Context, rt, v, platform, allowflags(t.Allow...)...)
}
