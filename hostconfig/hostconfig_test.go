package hostconfig_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/denokit/denofunc"
	"github.com/denokit/denofunc/hostconfig"
	"github.com/stretchr/testify/require"
)

func writeconfig(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "host.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))
	return path
}

func readconfig(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func description(t *testing.T, doc map[string]interface{}) map[string]interface{} {
	t.Helper()

	handler, ok := doc["customHandler"].(map[string]interface{})
	require.True(t, ok)
	desc, ok := handler["description"].(map[string]interface{})
	require.True(t, ok)
	return desc
}

func TestFor(t *testing.T) {
	rt := denofunc.NewRuntime()

	t.Run("executable_launches_the_compiled_binary", func(t *testing.T) {
		desc := hostconfig.For(rt, denofunc.StyleExecutable, denofunc.PlatformLinux)
		require.Equal(t, "bin/linux/worker", desc.DefaultExecutablePath)
		require.Empty(t, desc.Arguments)

		desc = hostconfig.For(rt, denofunc.StyleExecutable, denofunc.PlatformWindows)
		require.Equal(t, "bin/windows/worker.exe", desc.DefaultExecutablePath)
		require.Empty(t, desc.Arguments)
	})

	t.Run("jsbundle_runs_the_bundle_through_the_runtime", func(t *testing.T) {
		desc := hostconfig.For(rt, denofunc.StyleJSBundle, denofunc.PlatformLinux)
		require.Equal(t, "bin/linux/deno", desc.DefaultExecutablePath)
		require.Equal(
			t,
			[]string{"run", "--allow-env", "--allow-net", "--allow-read", "--allow-write", "worker.bundle.js"},
			desc.Arguments,
		)
	})

	t.Run("none_runs_the_raw_script", func(t *testing.T) {
		desc := hostconfig.For(rt, denofunc.StyleNone, denofunc.PlatformWindows)
		require.Equal(t, "bin/windows/deno.exe", desc.DefaultExecutablePath)
		require.Equal(
			t,
			[]string{"run", "--allow-env", "--allow-net", "--allow-read", "--allow-write", "worker.ts"},
			desc.Arguments,
		)
	})

	t.Run("passthrough_permissions_precede_the_script", func(t *testing.T) {
		desc := hostconfig.For(rt, denofunc.StyleNone, denofunc.PlatformLinux, "--allow-hrtime")
		require.Equal(
			t,
			[]string{"run", "--allow-env", "--allow-net", "--allow-read", "--allow-write", "--allow-hrtime", "worker.ts"},
			desc.Arguments,
		)
	})
}

func TestRewrite(t *testing.T) {
	rt := denofunc.NewRuntime()

	t.Run("preserves_existing_top_level_keys", func(t *testing.T) {
		path := writeconfig(t, `{"version": "2.0", "logging": {"logLevel": {"default": "Information"}}}`)

		require.NoError(t, hostconfig.Rewrite(path, hostconfig.For(rt, denofunc.StyleExecutable, denofunc.PlatformLinux)))

		doc := readconfig(t, path)
		require.Equal(t, "2.0", doc["version"])
		require.Contains(t, doc, "logging")
		require.Equal(t, "bin/linux/worker", description(t, doc)["defaultExecutablePath"])
	})

	t.Run("preserves_sibling_custom_handler_keys", func(t *testing.T) {
		path := writeconfig(t, `{"version": "2.0", "customHandler": {"enableForwardingHttpRequest": true, "description": {"defaultExecutablePath": "stale"}}}`)

		require.NoError(t, hostconfig.Rewrite(path, hostconfig.For(rt, denofunc.StyleJSBundle, denofunc.PlatformWindows)))

		doc := readconfig(t, path)
		handler := doc["customHandler"].(map[string]interface{})
		require.Equal(t, true, handler["enableForwardingHttpRequest"])
		require.Equal(t, "bin/windows/deno.exe", description(t, doc)["defaultExecutablePath"])
	})

	t.Run("round_trips_every_style_and_platform", func(t *testing.T) {
		for _, style := range []denofunc.Style{denofunc.StyleExecutable, denofunc.StyleJSBundle, denofunc.StyleNone} {
			for _, platform := range []denofunc.Platform{denofunc.PlatformLinux, denofunc.PlatformWindows} {
				path := writeconfig(t, `{"version": "2.0"}`)
				expected := hostconfig.For(rt, style, platform)

				require.NoError(t, hostconfig.Rewrite(path, expected))

				doc := readconfig(t, path)
				require.Equal(t, "2.0", doc["version"])
				require.Equal(t, expected.DefaultExecutablePath, description(t, doc)["defaultExecutablePath"])
			}
		}
	})

	t.Run("missing_configuration_is_an_error", func(t *testing.T) {
		err := hostconfig.Rewrite(filepath.Join(t.TempDir(), "host.json"), hostconfig.For(rt, denofunc.StyleNone, denofunc.PlatformLinux))
		require.Error(t, err)
	})
}
