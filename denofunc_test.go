package denofunc_test

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/denokit/denofunc"
	"github.com/stretchr/testify/require"
)

func TestResolveStyle(t *testing.T) {
	rt := denofunc.NewRuntime()

	t.Run("implicit_prefers_executable_at_threshold", func(t *testing.T) {
		style, err := rt.ResolveStyle("", semver.MustParse("1.6.0"))
		require.NoError(t, err)
		require.Equal(t, denofunc.StyleExecutable, style)
	})

	t.Run("implicit_prefers_executable_above_threshold", func(t *testing.T) {
		style, err := rt.ResolveStyle("", semver.MustParse("1.16.3"))
		require.NoError(t, err)
		require.Equal(t, denofunc.StyleExecutable, style)
	})

	t.Run("implicit_falls_back_to_jsbundle_below_threshold", func(t *testing.T) {
		style, err := rt.ResolveStyle("", semver.MustParse("1.5.4"))
		require.NoError(t, err)
		require.Equal(t, denofunc.StyleJSBundle, style)
	})

	t.Run("explicit_styles_win", func(t *testing.T) {
		for _, requested := range []denofunc.Style{denofunc.StyleJSBundle, denofunc.StyleNone} {
			style, err := rt.ResolveStyle(string(requested), semver.MustParse("1.16.3"))
			require.NoError(t, err)
			require.Equal(t, requested, style)
		}
	})

	t.Run("explicit_executable_below_threshold_rejected", func(t *testing.T) {
		_, err := rt.ResolveStyle(string(denofunc.StyleExecutable), semver.MustParse("1.5.4"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "1.6.0")
	})

	t.Run("invalid_style_rejected", func(t *testing.T) {
		_, err := rt.ResolveStyle("tarball", semver.MustParse("1.16.3"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid bundle style")
	})
}

func TestArtifactPaths(t *testing.T) {
	rt := denofunc.NewRuntime()

	t.Run("windows_executables_carry_the_suffix", func(t *testing.T) {
		require.Equal(t, "bin/windows/worker.exe", rt.ExecutablePath(denofunc.PlatformWindows))
		require.Equal(t, "bin/windows/deno.exe", rt.RuntimePath(denofunc.PlatformWindows))
	})

	t.Run("linux_executables_do_not", func(t *testing.T) {
		require.Equal(t, "bin/linux/worker", rt.ExecutablePath(denofunc.PlatformLinux))
		require.Equal(t, "bin/linux/deno", rt.RuntimePath(denofunc.PlatformLinux))
	})
}

func TestLite(t *testing.T) {
	rt := denofunc.NewRuntime()

	require.False(t, rt.Lite(semver.MustParse("1.7.5")))
	require.True(t, rt.Lite(semver.MustParse("1.8.0")))
	require.True(t, rt.Lite(semver.MustParse("1.9.2")))
	require.False(t, rt.Lite(semver.MustParse("1.10.0")))
}

func TestRemoteURLs(t *testing.T) {
	rt := denofunc.NewRuntime()

	t.Run("template_archive_parameterized_by_branch", func(t *testing.T) {
		require.Equal(
			t,
			"https://github.com/denokit/denofunc-template/archive/v2.zip",
			rt.TemplateArchiveURL("v2"),
		)
	})

	t.Run("release_parameterized_by_version_and_platform", func(t *testing.T) {
		require.Equal(
			t,
			"https://github.com/denoland/deno/releases/download/v1.16.3/deno-x86_64-pc-windows-msvc.zip",
			rt.ReleaseURL(semver.MustParse("1.16.3"), denofunc.PlatformWindows),
		)
	})
}

func TestParsePlatform(t *testing.T) {
	t.Run("recognized", func(t *testing.T) {
		for _, s := range []string{"linux", "windows", "darwin"} {
			p, err := denofunc.ParsePlatform(s)
			require.NoError(t, err)
			require.Equal(t, denofunc.Platform(s), p)
		}
	})

	t.Run("unrecognized", func(t *testing.T) {
		_, err := denofunc.ParsePlatform("plan9")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unrecognized platform")
	})
}
