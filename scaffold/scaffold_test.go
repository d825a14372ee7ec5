package scaffold_test

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/denokit/denofunc/internal/testx"
	"github.com/denokit/denofunc/scaffold"
	"github.com/stretchr/testify/require"
)

// archive builds a zip in the shape github produces: a single top level
// folder named after the repository and ref containing the template files.
func archive(t *testing.T, root string, files map[string]string) []byte {
	t.Helper()

	var (
		buf bytes.Buffer
	)

	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(root + "/" + name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func serve(t *testing.T, body []byte, requests *int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClone(t *testing.T) {
	t.Run("extracts_the_template_at_the_top_level", func(t *testing.T) {
		ctx, done := testx.Context(t)
		defer done()

		var requests int
		srv := serve(t, archive(t, "denofunc-template-main", map[string]string{
			"worker.ts":                   "export {}\n",
			"host.json":                   "{}\n",
			"functions/hello/config.json": "{}\n",
		}), &requests)

		dir := t.TempDir()
		require.NoError(t, scaffold.Clone(ctx, srv.Client(), dir, srv.URL))

		require.Equal(t, 1, requests)
		require.FileExists(t, filepath.Join(dir, "worker.ts"))
		require.FileExists(t, filepath.Join(dir, "host.json"))
		require.FileExists(t, filepath.Join(dir, "functions", "hello", "config.json"))
		require.NoDirExists(t, filepath.Join(dir, "denofunc-template-main"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 3)
	})

	t.Run("refuses_a_non_empty_directory", func(t *testing.T) {
		ctx, done := testx.Context(t)
		defer done()

		var requests int
		srv := serve(t, nil, &requests)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("keep"), 0600))

		err := scaffold.Clone(ctx, srv.Client(), dir, srv.URL)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be empty")

		// no network traffic, no writes.
		require.Equal(t, 0, requests)
		entries, rerr := os.ReadDir(dir)
		require.NoError(t, rerr)
		require.Len(t, entries, 1)
	})

	t.Run("download_failures_propagate", func(t *testing.T) {
		ctx, done := testx.Context(t)
		defer done()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		err := scaffold.Clone(ctx, srv.Client(), t.TempDir(), srv.URL)
		require.Error(t, err)
	})
}
