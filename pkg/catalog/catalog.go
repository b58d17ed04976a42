// Package catalog reads the remote version manifest and selects entries
// from it.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/manifest"
)

const DefaultURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

// Search returns the entries of exactly versionType whose id contains filter,
// keeping catalog order. An empty filter matches every id. The match is case
// sensitive and an empty result is not an error.
func Search(entries []manifest.CatalogEntry, versionType manifest.VersionType, filter string) []manifest.CatalogEntry {
	found := []manifest.CatalogEntry{}
	for _, entry := range entries {
		if entry.Type != versionType {
			continue
		}
		if filter != "" && !strings.Contains(entry.ID, filter) {
			continue
		}
		found = append(found, entry)
	}
	return found
}

// Getter is the transfer used by Client.
type Getter interface {
	Bytes(ctx context.Context, url string) ([]byte, error)
}

type Client struct {
	getter Getter
	url    string
}

func NewClient(getter Getter, url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{getter: getter, url: url}
}

func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and decodes the catalog.
func (c *Client) Fetch(ctx context.Context) (*manifest.Catalog, error) {
	data, err := c.getter.Bytes(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	cat, err := manifest.DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("read catalog from %s: %w", c.url, err)
	}

	slog.Debug("Fetched catalog",
		slog.String("url", c.url),
		slog.Int("versions", len(cat.Versions)),
		slog.String("latest", cat.Latest.Release))
	return cat, nil
}

// Index looks catalog entries up by id.
type Index struct {
	entries *orderedmap.OrderedMap[string, manifest.CatalogEntry]
}

// NewIndex indexes entries by id. When an id repeats, the first entry is kept.
func NewIndex(entries []manifest.CatalogEntry) *Index {
	m := orderedmap.New[string, manifest.CatalogEntry](len(entries))
	for _, entry := range entries {
		if _, ok := m.Get(entry.ID); ok {
			continue
		}
		m.Set(entry.ID, entry)
	}
	return &Index{entries: m}
}

func (idx *Index) Find(id string) (manifest.CatalogEntry, error) {
	entry, ok := idx.entries.Get(id)
	if !ok {
		return manifest.CatalogEntry{}, errkind.NotFoundf("version %s", id)
	}
	return entry, nil
}

// Entries returns the indexed entries in catalog order.
func (idx *Index) Entries() []manifest.CatalogEntry {
	out := make([]manifest.CatalogEntry, 0, idx.entries.Len())
	for pair := idx.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (idx *Index) Len() int {
	return idx.entries.Len()
}
