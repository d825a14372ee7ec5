package main

import (
	"log"
	"net/http"

	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/cmd/cmdopts"
	"github.com/denokit/denofunc/scaffold"
)

type initialize struct {
	Branch string `arg:"" optional:"" help:"branch of the template repository" default:"${vars_template_ref}"`
	Dir    string `name:"directory" help:"directory to initialize" default:"${vars_cwd}" hidden:"true"`
}

func (t initialize) Run(gctx *cmdopts.Global, rt *denofunc.Runtime) (err error) {
	log.Println("initializing project from template", t.Branch)
	defer log.Println("initialized project from template", t.Branch)

	return scaffold.Clone(gctx.Context, http.DefaultClient, t.Dir, rt.TemplateArchiveURL(t.Branch))
}
