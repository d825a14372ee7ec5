package main

import (
	"github.com/alecthomas/kong"
)

type usage struct{}

func (t usage) Run(kctx *kong.Context) error {
	return kctx.PrintUsage(false)
}
