// Package httpx provides utility functions for http requests.
package httpx

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/denokit/denofunc/internal/debugx"
	"github.com/denokit/denofunc/internal/errorsx"
	"github.com/dustin/go-humanize"
)

// Get return a get request for the given endpoint
func Get(ctx context.Context, endpoint string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, strings.NewReader(""))
}

// Error ...
type Error struct {
	Code  int
	cause error
}

func (t Error) Error() string {
	return t.cause.Error()
}

func (t Error) Is(target error) bool {
	_, ok := target.(*Error)
	return ok
}

func AsError(r *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return r, err
	}

	if r.StatusCode >= 400 {
		return r, &Error{Code: r.StatusCode, cause: errorsx.New(r.Status)}
	}

	return r, nil
}

func AutoClose(r *http.Response) error {
	if r == nil {
		return nil
	}

	return r.Body.Close()
}

// Retrieve downloads the endpoint into the file at dst.
func Retrieve(ctx context.Context, c *http.Client, endpoint string, dst string) (err error) {
	var (
		req *http.Request
		out *os.File
		n   int64
	)

	debugx.Println("retrieving", endpoint, "->", dst)

	if req, err = Get(ctx, endpoint); err != nil {
		return errorsx.Wrapf(err, "unable to create request: %s", endpoint)
	}

	resp, err := AsError(c.Do(req))
	defer func() { errorsx.Log(AutoClose(resp)) }()
	if err != nil {
		return errorsx.Wrapf(err, "retrieve failed: %s", endpoint)
	}

	if out, err = os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600); err != nil {
		return errorsx.Wrapf(err, "unable to create: %s", dst)
	}
	defer out.Close()

	if n, err = io.Copy(out, resp.Body); err != nil {
		return errorsx.Wrapf(err, "unable to write: %s", dst)
	}

	debugx.Println("retrieved", humanize.Bytes(uint64(n)), endpoint)

	return nil
}
