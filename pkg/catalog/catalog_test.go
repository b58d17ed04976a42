package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/fetch"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/stretchr/testify/require"
)

var sample = []manifest.CatalogEntry{
	{ID: "1.21", Type: manifest.Release, URL: "U1"},
	{ID: "1.21-rc1", Type: manifest.Snapshot, URL: "U2"},
}

func ids(entries []manifest.CatalogEntry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func Test_Search(t *testing.T) {
	entries := append(sample,
		manifest.CatalogEntry{ID: "1.20.6", Type: manifest.Release, URL: "U3"},
		manifest.CatalogEntry{ID: "b1.7.3", Type: manifest.OldBeta, URL: "U4"},
	)

	type testcase struct {
		versionType manifest.VersionType
		filter      string
		expected    []string
	}

	testcases := map[string]testcase{
		"all releases in catalog order": {
			versionType: manifest.Release,
			expected:    []string{"1.21", "1.20.6"},
		},
		"snapshot with filter": {
			versionType: manifest.Snapshot,
			filter:      "rc",
			expected:    []string{"1.21-rc1"},
		},
		"no match": {
			versionType: manifest.Release,
			filter:      "zz",
			expected:    []string{},
		},
		"filter is case sensitive": {
			versionType: manifest.Snapshot,
			filter:      "RC",
			expected:    []string{},
		},
		"type must match exactly": {
			versionType: "beta",
			expected:    []string{},
		},
		"old beta": {
			versionType: manifest.OldBeta,
			filter:      "b1",
			expected:    []string{"b1.7.3"},
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			found := Search(entries, tc.versionType, tc.filter)
			require.NotNil(t, found)
			require.Equal(t, tc.expected, ids(found))
		})
	}
}

func Test_Index(t *testing.T) {
	idx := NewIndex(append(sample, manifest.CatalogEntry{ID: "1.21", Type: manifest.Release, URL: "dup"}))

	require.Equal(t, 2, idx.Len())
	require.Equal(t, []string{"1.21", "1.21-rc1"}, ids(idx.Entries()))

	entry, err := idx.Find("1.21")
	require.NoError(t, err)
	require.Equal(t, "U1", entry.URL)

	_, err = idx.Find("9.99")
	require.ErrorIs(t, err, errkind.ErrNotFound)
	require.EqualError(t, err, "version 9.99: not found")
}

func Test_ClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manifest.json":
			_, _ = w.Write([]byte(`{"latest": {"release": "1.21", "snapshot": "1.21-rc1"}, "versions": [
				{"id": "1.21", "type": "release", "url": "U1", "time": "t", "releaseTime": "rt"},
				{"id": "1.21-rc1", "type": "snapshot", "url": "U2", "time": "t", "releaseTime": "rt"}
			]}`))
		case "/broken.json":
			_, _ = w.Write([]byte(`{"versions": "nope"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	getter := fetch.New(fetch.WithHTTPClient(server.Client()))

	cat, err := NewClient(getter, server.URL+"/manifest.json").Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1.21", cat.Latest.Release)
	require.Equal(t, []string{"1.21", "1.21-rc1"}, ids(cat.Versions))

	_, err = NewClient(getter, server.URL+"/broken.json").Fetch(context.Background())
	require.ErrorIs(t, err, errkind.ErrParse)

	_, err = NewClient(getter, server.URL+"/gone.json").Fetch(context.Background())
	require.ErrorIs(t, err, errkind.ErrNetwork)
	require.False(t, errors.Is(err, errkind.ErrParse))
}

func Test_NewClientDefaultURL(t *testing.T) {
	require.Equal(t, DefaultURL, NewClient(fetch.New(), "").URL())
}
