package command

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmcl/rmcl/pkg/catalog"
	"github.com/rmcl/rmcl/pkg/download"
	"github.com/rmcl/rmcl/pkg/fetch"
)

func logProgress(url string, done, total int64) {
	if total > 0 && done == total {
		slog.Debug("Transfer complete", slog.String("url", url), slog.Int64("bytes", done))
	}
}

func NewFetcher() *fetch.Fetcher {
	return fetch.New(fetch.WithProgressFunc(logProgress))
}

func NewCatalogClient(cmd *cobra.Command, f *fetch.Fetcher) (*catalog.Client, error) {
	url, err := GetManifestURL(cmd)
	if err != nil {
		return nil, err
	}
	return catalog.NewClient(f, url), nil
}

func NewPipeline(f *fetch.Fetcher) *download.Pipeline {
	return download.New(f)
}
