// Package denofunc holds the process lifetime settings for the deployment cli:
// artifact naming, packaging styles, permission defaults and the remote
// locations artifacts are retrieved from.
package denofunc

import (
	"fmt"
	"path"

	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc/internal/envx"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/denokit/denofunc/internal/osx"
)

// Logging settings
const (
	EnvLogsDebug = "DENOFUNC_LOGS_DEBUG" // enable logging for debug statements. boolean, see strconv.ParseBool for valid values.
)

const (
	EnvTemplateRepository = "DENOFUNC_TEMPLATE_REPOSITORY" // owner/name of the github template repository.
	EnvReleaseHost        = "DENOFUNC_RELEASE_HOST"        // base url runtime binary releases are downloaded from.
)

// Style is the packaging strategy for the worker script.
type Style string

const (
	StyleExecutable Style = "executable" // ahead of time compiled native binary.
	StyleJSBundle   Style = "jsbundle"   // single file script bundle run by the runtime.
	StyleNone       Style = "none"       // raw script run directly by the runtime.
)

func ParseStyle(s string) (Style, error) {
	switch style := Style(s); style {
	case StyleExecutable, StyleJSBundle, StyleNone:
		return style, nil
	default:
		return "", errorsx.Errorf("invalid bundle style '%s': expected one of %s, %s or %s", s, StyleExecutable, StyleJSBundle, StyleNone)
	}
}

// Platform is the operating system family of the deployment target.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
)

func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformLinux, PlatformWindows, PlatformDarwin:
		return p, nil
	default:
		return "", errorsx.Errorf("unrecognized platform '%s': expected one of %s, %s or %s", s, PlatformLinux, PlatformWindows, PlatformDarwin)
	}
}

// Target returns the compilation target triple for the platform.
func (t Platform) Target() string {
	switch t {
	case PlatformWindows:
		return "x86_64-pc-windows-msvc"
	case PlatformDarwin:
		return "x86_64-apple-darwin"
	default:
		return "x86_64-unknown-linux-gnu"
	}
}

// ExecSuffix returns the executable file suffix for the platform.
func (t Platform) ExecSuffix() string {
	return osx.ExecutableSuffix(string(t))
}

// Runtime is the immutable settings handed to every command handler.
type Runtime struct {
	WorkerScript   string         // entry point script of the worker.
	BundleFile     string         // output of the single file bundle.
	HostConfigFile string         // host configuration rewritten on publish.
	BinDir         string         // directory artifacts are generated into.
	ExecutableName string         // base name of the compiled executable.
	RuntimeBinary  string         // base name of the worker runtime binary.
	Permissions    []string       // fixed permission flags granted to the worker.
	MinCompile     semver.Version // minimum runtime version supporting ahead of time compilation.
	LiteMin        semver.Version // --lite only exists within [LiteMin, LiteMax).
	LiteMax        semver.Version

	TemplateRepository string // owner/name of the template repository.
	ReleaseHost        string // base url for runtime binary releases.
}

func NewRuntime() *Runtime {
	return &Runtime{
		WorkerScript:   "worker.ts",
		BundleFile:     "worker.bundle.js",
		HostConfigFile: "host.json",
		BinDir:         "bin",
		ExecutableName: "worker",
		RuntimeBinary:  "deno",
		Permissions: []string{
			"--allow-env",
			"--allow-net",
			"--allow-read",
			"--allow-write",
		},
		MinCompile:         semver.MustParse("1.6.0"),
		LiteMin:            semver.MustParse("1.8.0"),
		LiteMax:            semver.MustParse("1.10.0"),
		TemplateRepository: envx.String("denokit/denofunc-template", EnvTemplateRepository),
		ReleaseHost:        envx.String("https://github.com/denoland/deno/releases/download", EnvReleaseHost),
	}
}

// ResolveStyle determines the packaging style for a publish. an explicit
// request wins, otherwise the newest style the detected runtime supports.
func (t *Runtime) ResolveStyle(requested string, v semver.Version) (Style, error) {
	if requested == "" {
		if v.GE(t.MinCompile) {
			return StyleExecutable, nil
		}

		return StyleJSBundle, nil
	}

	style, err := ParseStyle(requested)
	if err != nil {
		return "", err
	}

	if style == StyleExecutable && v.LT(t.MinCompile) {
		return "", errorsx.Errorf("the %s bundle style requires runtime version %s or newer, detected %s", StyleExecutable, t.MinCompile, v)
	}

	return style, nil
}

// Lite reports whether the compilation quirk flag applies to the version.
func (t *Runtime) Lite(v semver.Version) bool {
	return v.GE(t.LiteMin) && v.LT(t.LiteMax)
}

// ExecutablePath is the location of the compiled worker executable.
func (t *Runtime) ExecutablePath(p Platform) string {
	return path.Join(t.BinDir, string(p), t.ExecutableName+p.ExecSuffix())
}

// RuntimePath is the location of the provisioned worker runtime binary.
func (t *Runtime) RuntimePath(p Platform) string {
	return path.Join(t.BinDir, string(p), t.RuntimeBinary+p.ExecSuffix())
}

// TemplateArchiveURL is the zip archive of the template repository at the given branch.
func (t *Runtime) TemplateArchiveURL(branch string) string {
	return fmt.Sprintf("https://github.com/%s/archive/%s.zip", t.TemplateRepository, branch)
}

// ReleaseURL is the zip archive of the runtime binary release for the platform.
func (t *Runtime) ReleaseURL(v semver.Version, p Platform) string {
	return fmt.Sprintf("%s/v%s/deno-%s.zip", t.ReleaseHost, v, p.Target())
}
