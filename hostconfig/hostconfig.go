// Package hostconfig rewrites the functions host configuration to launch
// the packaged worker through the platform's custom handler.
package hostconfig

import (
	"encoding/json"
	"os"

	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/internal/errorsx"
)

// Description of the executable the host launches for the worker.
type Description struct {
	DefaultExecutablePath string   `json:"defaultExecutablePath"`
	Arguments             []string `json:"arguments"`
}

// For builds the handler description for the packaging style and platform.
func For(rt *denofunc.Runtime, style denofunc.Style, platform denofunc.Platform, passthrough ...string) Description {
	if style == denofunc.StyleExecutable {
		return Description{
			DefaultExecutablePath: rt.ExecutablePath(platform),
			Arguments:             []string{},
		}
	}

	script := rt.WorkerScript
	if style == denofunc.StyleJSBundle {
		script = rt.BundleFile
	}

	args := append([]string{"run"}, rt.Permissions...)
	args = append(args, passthrough...)
	args = append(args, script)

	return Description{
		DefaultExecutablePath: rt.RuntimePath(platform),
		Arguments:             args,
	}
}

// Rewrite the host configuration's custom handler descriptor in place,
// preserving every other key of the document.
func Rewrite(path string, desc Description) (err error) {
	var (
		raw     []byte
		doc     map[string]interface{}
		encoded []byte
	)

	if raw, err = os.ReadFile(path); err != nil {
		return errorsx.Wrapf(err, "unable to read the host configuration: %s", path)
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		return errorsx.Wrapf(err, "malformed host configuration: %s", path)
	}

	handler, ok := doc["customHandler"].(map[string]interface{})
	if !ok {
		handler = map[string]interface{}{}
	}

	handler["description"] = desc
	doc["customHandler"] = handler

	if encoded, err = json.MarshalIndent(doc, "", "  "); err != nil {
		return errorsx.Wrap(err, "unable to encode the host configuration")
	}

	return errorsx.Wrapf(os.WriteFile(path, append(encoded, '\n'), 0600), "unable to write the host configuration: %s", path)
}
