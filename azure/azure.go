// Package azure wraps the cloud provider and functions tooling this cli
// delegates to. both are consumed as opaque binaries, only their exit
// status and stdout json are interpreted.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/internal/debugx"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/execx"
	"github.com/denokit/denofunc/internal/slicesx"
)

const (
	siteResourceType = "Microsoft.Web/sites"
	slotResourceType = "Microsoft.Web/sites/slots"
	customRuntime    = "custom"
)

// Resource is the subset of the provider's site resource this cli inspects.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Platform infers the deployment OS family from the resource kind string.
func (t Resource) Platform() string {
	if strings.Contains(strings.ToLower(t.Kind), "linux") {
		return string(denofunc.PlatformLinux)
	}

	return string(denofunc.PlatformWindows)
}

// QualifiedName of an app, including the slot suffix when a slot is given.
func QualifiedName(app, slot string) string {
	if slot == "" {
		return app
	}

	return fmt.Sprintf("%s/%s", app, slot)
}

// Detect resolves the named function app (optionally scoped to a
// deployment slot) from the provider's resource list and switches its
// runtime mode to the custom handler.
func Detect(ctx context.Context, app, slot string) (zero Resource, err error) {
	var (
		out       bytes.Buffer
		resources []Resource
	)

	rtype := siteResourceType
	if slot != "" {
		rtype = slotResourceType
	}

	cmd := exec.CommandContext(ctx, "az", "resource", "list", "--resource-type", rtype, "--output", "json")
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err = execx.NewFallback("az.cmd").Run(ctx, cmd); err != nil {
		return zero, errorsx.Wrap(err, "unable to list function apps")
	}

	if err = json.NewDecoder(&out).Decode(&resources); err != nil {
		return zero, errorsx.Wrap(err, "unable to decode the function app listing")
	}

	name := QualifiedName(app, slot)
	matched, found := slicesx.Find(func(r Resource) bool { return r.Name == name }, resources...)
	if !found {
		return zero, errorsx.Errorf("function app '%s' not found", name)
	}

	debugx.Println(spew.Sdump(matched))

	if err = enableCustomHandler(ctx, matched); err != nil {
		return zero, err
	}

	return matched, nil
}

func enableCustomHandler(ctx context.Context, r Resource) (err error) {
	log.Println("configuring custom handler runtime", r.Name)

	cmd := exec.CommandContext(
		ctx,
		"az", "resource", "update",
		"--ids", r.ID,
		"--set", fmt.Sprintf("properties.siteConfig.linuxFxVersion=%s", customRuntime),
		"--output", "none",
	)
	cmd.Stderr = os.Stderr

	return errorsx.Wrapf(execx.NewFallback("az.cmd").Run(ctx, cmd), "unable to configure the runtime of '%s'", r.Name)
}

// Publish uploads the packaged worker through the functions tooling.
func Publish(ctx context.Context, app, slot string) (err error) {
	log.Println("publishing initiated", QualifiedName(app, slot))
	defer log.Println("publishing completed", QualifiedName(app, slot))

	args := []string{"azure", "functionapp", "publish", app, "--no-build"}
	if slot != "" {
		args = append(args, "--slot", slot)
	}

	cmd := exec.CommandContext(ctx, "func", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return execx.NewFallback("func.cmd").Run(ctx, cmd)
}
