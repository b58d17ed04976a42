package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rmcl/rmcl/pkg/errkind"
)

// DecodeCatalog validates and decodes a version manifest body.
func DecodeCatalog(data []byte) (*Catalog, error) {
	if err := validateDocument(compiledCatalogSchema, data); err != nil {
		return nil, errkind.Parsef(err, "validate catalog")
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errkind.Parsef(err, "decode catalog")
	}
	return &c, nil
}

// DecodeDescriptor validates and decodes a version descriptor body. The
// returned descriptor keeps a copy of data in Raw.
func DecodeDescriptor(data []byte) (*Descriptor, error) {
	if err := validateDocument(compiledDescriptorSchema, data); err != nil {
		return nil, errkind.Parsef(err, "validate descriptor")
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errkind.Parsef(err, "decode descriptor")
	}
	d.Raw = append([]byte(nil), data...)
	return &d, nil
}

// Natives reports whether the library carries native payloads.
func (l Library) Natives() bool {
	return strings.Contains(l.Name, "natives")
}

func (l Library) String() string {
	if l.Downloads.Artifact == nil {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.Downloads.Artifact.Path)
}
