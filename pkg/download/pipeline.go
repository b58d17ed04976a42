// Package download turns a catalog entry into a populated installation root.
package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rmcl/rmcl/pkg/catalog"
	"github.com/rmcl/rmcl/pkg/errkind"
	"github.com/rmcl/rmcl/pkg/filesys"
	"github.com/rmcl/rmcl/pkg/layout"
	"github.com/rmcl/rmcl/pkg/manifest"
	"github.com/rmcl/rmcl/pkg/platform"
)

// Stage names a step of Acquire. Stages run in the declared order.
type Stage string

const (
	StageDescriptor     Stage = "descriptor"
	StagePrepare        Stage = "prepare"
	StageLibraries      Stage = "libraries"
	StageAssetIndex     Stage = "asset-index"
	StageDescriptorFile Stage = "descriptor-file"
	StageClient         Stage = "client"
)

// StageError reports the stage at which Acquire stopped. Work done by earlier
// stages is left on disk.
type StageError struct {
	Stage Stage
	Inner error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("acquire stage %s: %v", e.Stage, e.Inner)
}

func (e *StageError) Unwrap() error {
	return e.Inner
}

// Transport is the network access used by the pipeline.
type Transport interface {
	Bytes(ctx context.Context, url string) ([]byte, error)
	ToFile(ctx context.Context, url, path string) error
}

type Option func(*Pipeline)

// WithFilter overrides the platform filter, which defaults to the running OS.
func WithFilter(f platform.Filter) Option {
	return func(p *Pipeline) {
		p.filter = f
	}
}

type Pipeline struct {
	transport Transport
	filter    platform.Filter
}

func New(transport Transport, opts ...Option) *Pipeline {
	p := &Pipeline{
		transport: transport,
		filter:    platform.NewFilter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AcquireByID resolves id in idx and acquires it into root.
func (p *Pipeline) AcquireByID(ctx context.Context, idx *catalog.Index, id string, root layout.Root) error {
	entry, err := idx.Find(id)
	if err != nil {
		return fmt.Errorf("resolve version: %w", err)
	}
	return p.Acquire(ctx, entry, root)
}

// Acquire fetches the descriptor of entry and everything it references into
// root. Running it again over a complete installation only re-fetches the
// descriptor, the asset index and the descriptor file; libraries present on
// disk are kept and the client archive is kept while its SHA1 matches.
func (p *Pipeline) Acquire(ctx context.Context, entry manifest.CatalogEntry, root layout.Root) error {
	slog.Info("Acquiring version", slog.String("id", entry.ID), slog.String("root", root.String()))

	desc, err := p.fetchDescriptor(ctx, entry)
	if err != nil {
		return &StageError{Stage: StageDescriptor, Inner: err}
	}

	versionDir := root.VersionDir(desc.ID)
	if err := os.MkdirAll(versionDir, os.ModePerm); err != nil {
		return &StageError{Stage: StagePrepare, Inner: errkind.Filesystemf(err, "create version directory %s", versionDir)}
	}

	libs := NewLibraryDownloader(p.transport, root.LibrariesDir())
	for _, lib := range p.filter.Libraries(desc) {
		if lib.Downloads.Artifact == nil {
			slog.Debug("Library has no artifact", slog.String("library", lib.Name))
			continue
		}
		if err := libs.Fetch(ctx, *lib.Downloads.Artifact); err != nil {
			return &StageError{Stage: StageLibraries, Inner: fmt.Errorf("library %s: %w", lib.Name, err)}
		}
	}

	if err := p.transport.ToFile(ctx, desc.AssetIndex.URL, root.AssetIndex(desc.AssetIndex.ID)); err != nil {
		return &StageError{Stage: StageAssetIndex, Inner: err}
	}

	if err := writeDescriptor(root.DescriptorFile(desc.ID, entry.ID), desc.Raw); err != nil {
		return &StageError{Stage: StageDescriptorFile, Inner: err}
	}

	if err := p.ensureClient(ctx, desc, root.ClientJar(desc.ID)); err != nil {
		return &StageError{Stage: StageClient, Inner: err}
	}

	slog.Info("Version acquired", slog.String("id", entry.ID), slog.String("path", versionDir))
	return nil
}

func (p *Pipeline) fetchDescriptor(ctx context.Context, entry manifest.CatalogEntry) (*manifest.Descriptor, error) {
	data, err := p.transport.Bytes(ctx, entry.URL)
	if err != nil {
		return nil, err
	}
	desc, err := manifest.DecodeDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("read descriptor of %s: %w", entry.ID, err)
	}
	if desc.ID != entry.ID {
		slog.Debug("Descriptor id differs from catalog id",
			slog.String("requested", entry.ID), slog.String("descriptor", desc.ID))
	}
	return desc, nil
}

func writeDescriptor(path string, raw []byte) error {
	if err := filesys.RemoveIfExists(path); err != nil {
		return errkind.Filesystemf(err, "remove previous descriptor")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errkind.Filesystemf(err, "write descriptor %s", path)
	}
	return nil
}

// ensureClient keeps a client archive whose SHA1 matches the descriptor and
// downloads it otherwise. A mismatch is repaired, never reported.
func (p *Pipeline) ensureClient(ctx context.Context, desc *manifest.Descriptor, path string) error {
	ref := desc.Downloads.Client

	exists, err := filesys.Exists(path)
	if err != nil {
		return errkind.Filesystemf(err, "check client archive")
	}
	if exists {
		ok, err := filesys.MatchesSHA1(path, ref.SHA1)
		if err != nil {
			return errkind.Filesystemf(err, "hash client archive %s", path)
		}
		if ok {
			slog.Info("Client archive up to date", slog.String("path", path))
			return nil
		}

		slog.Warn("Client archive hash mismatch, downloading again", slog.String("path", path))
		if err := filesys.RemoveIfExists(path); err != nil {
			return errkind.Filesystemf(err, "remove stale client archive")
		}
	}

	return p.transport.ToFile(ctx, ref.URL, path)
}
