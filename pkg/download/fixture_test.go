package download

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rmcl/rmcl/pkg/fetch"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
)

const (
	clientPath     = "/client.jar"
	assetIndexPath = "/indexes/17.json"
	descriptorPath = "/1.21.json"
	lwjglPath      = "/libraries/org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"
	bridgePath     = "/libraries/ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar"
)

var (
	clientBody = []byte("client archive")
	lwjglBody  = []byte("lwjgl classes")
	bridgeBody = []byte("objc bridge")
	assetBody  = []byte(`{"objects": {}}`)
)

func sha1Hex(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

// server serves a descriptor for version 1.21 with one unconditional library
// and one osx-only library, and counts requests per path.
type server struct {
	*httptest.Server

	mu    sync.Mutex
	files map[string][]byte
	hits  map[string]int
}

func newServer(t *testing.T) *server {
	t.Helper()

	s := &server{hits: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		body, ok := s.files[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(s.Close)

	s.files = map[string][]byte{
		clientPath:     clientBody,
		assetIndexPath: assetBody,
		lwjglPath:      lwjglBody,
		bridgePath:     bridgeBody,
		descriptorPath: []byte(s.descriptor("1.21")),
	}
	return s
}

func (s *server) descriptor(id string) string {
	return fmt.Sprintf(`{
  "assetIndex": {"id": "17", "sha1": %q, "size": %d, "url": %q},
  "downloads": {"client": {"sha1": %q, "size": %d, "url": %q}},
  "id": %q,
  "libraries": [
    {
      "downloads": {"artifact": {"path": "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar", "sha1": %q, "size": %d, "url": %q}},
      "name": "org.lwjgl:lwjgl:3.3.3"
    },
    {
      "downloads": {"artifact": {"path": "ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar", "sha1": %q, "size": %d, "url": %q}},
      "name": "ca.weblite:java-objc-bridge:1.1",
      "rules": [{"action": "allow", "os": {"name": "osx"}}]
    },
    {
      "downloads": {},
      "name": "org.lwjgl.lwjgl:lwjgl-platform:2.9.4"
    }
  ],
  "mainClass": "net.minecraft.client.main.Main",
  "releaseTime": "2024-06-13T08:24:03+00:00",
  "time": "2024-06-13T08:32:38+00:00",
  "type": "release"
}`,
		sha1Hex(assetBody), len(assetBody), s.URL+assetIndexPath,
		sha1Hex(clientBody), len(clientBody), s.URL+clientPath,
		id,
		sha1Hex(lwjglBody), len(lwjglBody), s.URL+lwjglPath,
		sha1Hex(bridgeBody), len(bridgeBody), s.URL+bridgePath,
	)
}

func (s *server) set(path string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if body == nil {
		delete(s.files, path)
		return
	}
	s.files[path] = body
}

func (s *server) hitCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *server) totalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

func (s *server) resetHits() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits = map[string]int{}
}

func (s *server) entry(id string) manifest.CatalogEntry {
	return manifest.CatalogEntry{ID: id, Type: manifest.Release, URL: s.URL + descriptorPath}
}

func (s *server) pipeline() *Pipeline {
	return New(fetch.New(fetch.WithHTTPClient(s.Client())), WithFilter(platform.Filter{OS: platform.Linux}))
}

func (s *server) entryList() []manifest.CatalogEntry {
	return []manifest.CatalogEntry{s.entry("1.21")}
}
