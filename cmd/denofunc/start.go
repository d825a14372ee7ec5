package main

import (
	"os"
	"os/exec"

	"github.com/denokit/denofunc/cmd/cmdopts"
	"github.com/denokit/denofunc/internal/execx"
)

type start struct{}

func (t start) Run(gctx *cmdopts.Global) (err error) {
	cmd := exec.CommandContext(gctx.Context, "func", "start")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return execx.NewFallback("func.cmd").Run(gctx.Context, cmd)
}

type host struct {
	Start start `cmd:"" help:"run the functions host locally"`
}
