package manifest

/*
Catalog, as served by the version manifest endpoint:

	{
	  "latest": {"release": "1.21", "snapshot": "24w14a"},
	  "versions": [
	    {
	      "id": "1.21",
	      "type": "release",
	      "url": "https://piston-meta.mojang.com/v1/packages/.../1.21.json",
	      "time": "2024-06-13T08:32:38+00:00",
	      "releaseTime": "2024-06-13T08:24:03+00:00"
	    }
	  ]
	}
*/

type VersionType string

const (
	Release  VersionType = "release"
	Snapshot VersionType = "snapshot"
	OldBeta  VersionType = "old_beta"
	OldAlpha VersionType = "old_alpha"
)

func (t VersionType) Valid() bool {
	switch t {
	case Release, Snapshot, OldBeta, OldAlpha:
		return true
	}
	return false
}

type Catalog struct {
	Latest   Latest         `json:"latest"`
	Versions []CatalogEntry `json:"versions"`
}

type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// CatalogEntry is a single listed version. Timestamps are kept verbatim.
type CatalogEntry struct {
	ID          string      `json:"id"`
	Type        VersionType `json:"type"`
	URL         string      `json:"url"`
	Time        string      `json:"time"`
	ReleaseTime string      `json:"releaseTime"`
}

// Descriptor is the full per-version metadata fetched from a catalog entry URL.
// Its ID may differ from the requested catalog entry id.
type Descriptor struct {
	AssetIndex  AssetIndexRef `json:"assetIndex"`
	Downloads   Downloads     `json:"downloads"`
	ID          string        `json:"id"`
	Libraries   []Library     `json:"libraries"`
	MainClass   string        `json:"mainClass"`
	ReleaseTime string        `json:"releaseTime"`
	Time        string        `json:"time"`
	Type        VersionType   `json:"type"`

	// Raw holds the fetched bytes; they are written to disk unchanged.
	Raw []byte `json:"-"`
}

type AssetIndexRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

type Downloads struct {
	// Client is the primary game archive.
	Client ClientRef `json:"client"`
}

type ClientRef struct {
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

/*
	{
	  "downloads": {
	    "artifact": {
	      "path": "ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar",
	      "sha1": "1227f9e0666314f9de41477e3ec277e542ed7f7b",
	      "size": 1330045,
	      "url": "https://libraries.minecraft.net/ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar"
	    }
	  },
	  "name": "ca.weblite:java-objc-bridge:1.1",
	  "rules": [{"action": "allow", "os": {"name": "osx"}}]
	}
*/

type Library struct {
	Downloads LibraryDownloads `json:"downloads"`
	Name      string           `json:"name"`
	Rules     []Rule           `json:"rules,omitempty"`
}

type LibraryDownloads struct {
	// Artifact is absent for legacy libraries that only ship classifiers.
	Artifact *Artifact `json:"artifact,omitempty"`
}

type Artifact struct {
	// Path is relative to the libraries directory and uses forward slashes.
	Path string `json:"path"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type Action string

const (
	Allow    Action = "allow"
	Disallow Action = "disallow"
)

type Rule struct {
	Action Action `json:"action"`
	// OS restricts the rule; a rule without OS applies to every platform.
	OS *OSRule `json:"os,omitempty"`
}

type OSRule struct {
	Name string `json:"name"`
}
