package main

import (
	"net/http"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/azure"
	"github.com/denokit/denofunc/cmd/cmdopts"
	"github.com/denokit/denofunc/deno"
	"github.com/denokit/denofunc/hostconfig"
	"github.com/denokit/denofunc/internal/slicesx"
)

type publish struct {
	Name        string   `arg:"" help:"name of the function app to publish to"`
	Slot        string   `name:"slot" help:"deployment slot to publish to" default:""`
	BundleStyle string   `name:"bundle-style" help:"packaging style: executable, jsbundle or none" default:""`
	Allow       []string `name:"allow" help:"additional permissions granted to the worker, literal --allow-* flags are accepted as well"`
}

func (t publish) Run(gctx *cmdopts.Global, rt *denofunc.Runtime) (err error) {
	var (
		v        semver.Version
		style    denofunc.Style
		platform denofunc.Platform
		app      azure.Resource
	)

	if v, err = deno.Version(gctx.Context); err != nil {
		return err
	}

	if style, err = rt.ResolveStyle(t.BundleStyle, v); err != nil {
		return err
	}

	if app, err = azure.Detect(gctx.Context, t.Name, t.Slot); err != nil {
		return err
	}

	if platform, err = denofunc.ParsePlatform(app.Platform()); err != nil {
		return err
	}

	allow := allowflags(t.Allow...)

	if err = hostconfig.Rewrite(rt.HostConfigFile, hostconfig.For(rt, style, platform, allow...)); err != nil {
		return err
	}

	switch style {
	case denofunc.StyleExecutable:
		if err = deno.Compile(gctx.Context, rt, v, platform, allow...); err != nil {
			return err
		}
	default:
		if err = deno.Provision(gctx.Context, http.DefaultClient, rt, v, platform); err != nil {
			return err
		}

		if style == denofunc.StyleJSBundle {
			if err = deno.Bundle(gctx.Context, rt); err != nil {
				return err
			}
		}
	}

	return azure.Publish(gctx.Context, t.Name, t.Slot)
}

// allowflags normalizes user provided permission names into runtime flags.
func allowflags(values ...string) []string {
	return slicesx.MapTransform(func(s string) string {
		if strings.HasPrefix(s, "--allow-") {
			return s
		}

		return "--allow-" + s
	}, values...)
}

// splitAllowFlags separates literal permission grants from the remaining
// arguments. the runtime accepts arbitrary --allow-* flags which a strict
// flag parser would otherwise reject as unknown.
func splitAllowFlags(args []string) (rest []string, allowed []string) {
	rest = make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "--allow-") {
			allowed = append(allowed, arg)
			continue
		}

		rest = append(rest, arg)
	}

	return rest, allowed
}
