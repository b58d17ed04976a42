package instance

import (
	"context"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/semaphore"

	"github.com/rmcl/rmcl/pkg/errkind"
)

// Registry holds the installation roots known to the application, keyed by
// their path string. Paths are compared exactly as given. Every operation
// runs under one exclusive lock.
type Registry struct {
	sem   *semaphore.Weighted
	roots *orderedmap.OrderedMap[string, *Index]
}

func NewRegistry() *Registry {
	return &Registry{sem: semaphore.NewWeighted(1)}
}

func (r *Registry) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errkind.New(errkind.Lock, "acquire registry lock", err)
	}
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return errkind.New(errkind.Lock, "acquire registry lock", err)
	}
	return nil
}

func (r *Registry) unlock() {
	r.sem.Release(1)
}

// Add scans path and registers it. Adding a path that is already registered
// returns the existing snapshot without rescanning.
func (r *Registry) Add(ctx context.Context, path, name string) (*Index, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()

	if r.roots == nil {
		r.roots = orderedmap.New[string, *Index]()
	}
	if idx, ok := r.roots.Get(path); ok {
		return idx, nil
	}

	idx, err := New(path, name)
	if err != nil {
		return nil, err
	}
	r.roots.Set(path, idx)

	slog.Info("Registered installation", slog.String("path", path), slog.String("name", name))
	return idx, nil
}

// Replace rescans an already registered path and swaps in the new snapshot.
func (r *Registry) Replace(ctx context.Context, path, name string) (*Index, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()

	if r.roots == nil {
		return nil, errkind.NotFoundf("installation %s", path)
	}
	if _, ok := r.roots.Get(path); !ok {
		return nil, errkind.NotFoundf("installation %s", path)
	}

	idx, err := New(path, name)
	if err != nil {
		return nil, err
	}
	r.roots.Set(path, idx)
	return idx, nil
}

func (r *Registry) ByPath(ctx context.Context, path string) (*Index, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()

	if r.roots != nil {
		if idx, ok := r.roots.Get(path); ok {
			return idx, nil
		}
	}
	return nil, errkind.NotFoundf("installation %s", path)
}

// All returns the registered snapshots in registration order.
func (r *Registry) All(ctx context.Context) ([]*Index, error) {
	if err := r.lock(ctx); err != nil {
		return nil, err
	}
	defer r.unlock()

	all := []*Index{}
	if r.roots == nil {
		return all, nil
	}
	for pair := r.roots.Oldest(); pair != nil; pair = pair.Next() {
		all = append(all, pair.Value)
	}
	return all, nil
}
