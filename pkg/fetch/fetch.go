// Package fetch performs the plain HTTP GET transfers used by the catalog
// client and the download pipeline.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rmcl/rmcl/pkg/errkind"
)

// HTTPClient is the subset of *http.Client used by Fetcher.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProgressFunc receives the number of bytes transferred so far and the
// declared total, which is -1 when unknown.
type ProgressFunc func(url string, done, total int64)

type Option func(*Fetcher)

func WithHTTPClient(client HTTPClient) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

func WithProgressFunc(fn ProgressFunc) Option {
	return func(f *Fetcher) {
		f.progress = fn
	}
}

type Fetcher struct {
	httpClient HTTPClient
	progress   ProgressFunc
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Bytes returns the full body of url.
func (f *Fetcher) Bytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(f.wrapProgress(url, resp))
	if err != nil {
		return nil, errkind.Networkf(err, "read body of %s", url)
	}
	return data, nil
}

// ToFile streams the body of url into path, creating parent directories.
// The body is written to a temporary sibling first, so path is only replaced
// by a complete transfer.
func (f *Fetcher) ToFile(ctx context.Context, url, path string) error {
	resp, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errkind.Filesystemf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".rmcl-*.tmp")
	if err != nil {
		return errkind.Filesystemf(err, "create temp file in %s", dir)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	body := &readRecorder{r: f.wrapProgress(url, resp)}
	if _, err := io.Copy(tmp, body); err != nil {
		if body.err != nil {
			return errkind.Networkf(err, "read body of %s", url)
		}
		return errkind.Filesystemf(err, "write %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		return errkind.Filesystemf(err, "close %s", tmpPath)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errkind.Filesystemf(err, "remove existing %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errkind.Filesystemf(err, "move %s to %s", tmpPath, path)
	}

	slog.Debug("Downloaded", slog.String("url", url), slog.String("path", path))
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	slog.Debug("Fetching", slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errkind.Networkf(err, "build request for %s", url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errkind.Networkf(err, "get %s", url)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errkind.Networkf(&StatusError{URL: url, Code: resp.StatusCode}, "get %s", url)
	}
	return resp, nil
}

func (f *Fetcher) wrapProgress(url string, resp *http.Response) io.Reader {
	if f.progress == nil {
		return resp.Body
	}
	return &progressReader{r: resp.Body, url: url, total: resp.ContentLength, report: f.progress}
}

// StatusError reports a non-200 response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

type progressReader struct {
	r      io.Reader
	url    string
	total  int64
	read   int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(p.url, p.read, p.total)
	}
	return n, err
}

// readRecorder remembers the first read failure so copy errors can be told
// apart from write errors.
type readRecorder struct {
	r   io.Reader
	err error
}

func (r *readRecorder) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}
