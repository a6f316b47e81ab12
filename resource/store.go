// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hack-pad/hackpadfs"
)

// Store is the read-only lookup consumed by the resource server.  Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the complete resource at the given store path.  ErrNotFound is returned, possibly
	// wrapped, if there is no such resource.  Any other error indicates a failure to read the payload,
	// in which case the returned Resource must be ignored.
	Get(ctx context.Context, p string) (Resource, error)
}

// MemoryStore is a Store populated up front.  Put must only be called during population;
// once a MemoryStore is being served from, it is never mutated, so Get requires no locking.
type MemoryStore struct {
	resources map[string]Resource
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		resources: make(map[string]Resource),
	}
}

// Put stores a resource under its Path, replacing any existing resource
func (ms *MemoryStore) Put(r Resource) {
	ms.resources[r.Path] = r
}

func (ms *MemoryStore) Get(_ context.Context, p string) (Resource, error) {
	if r, ok := ms.resources[p]; ok {
		return r, nil
	}

	return Resource{}, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// Len returns the number of resources in this store
func (ms *MemoryStore) Len() int {
	return len(ms.resources)
}

// Paths returns the sorted paths of all resources in this store
func (ms *MemoryStore) Paths() []string {
	paths := make([]string, 0, len(ms.resources))
	for p := range ms.resources {
		paths = append(paths, p)
	}

	sort.Strings(paths)
	return paths
}

// Load walks fsys and reads every regular file into a new MemoryStore.  Symlinks are followed
// the same way FSStore follows them, so a link to a regular file is loaded under the link's path.
// Directories, dangling links, and other irregular files are skipped.  Canceling ctx aborts the load.
func Load(ctx context.Context, fsys hackpadfs.FS, c *Classifier) (*MemoryStore, error) {
	ms := NewMemoryStore()
	err := hackpadfs.WalkDir(fsys, ".", func(p string, d hackpadfs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := hackpadfs.Stat(fsys, p)
		switch {
		case errors.Is(err, hackpadfs.ErrNotExist):
			return nil

		case err != nil:
			return err

		case !info.Mode().IsRegular():
			return nil
		}

		data, err := hackpadfs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		ms.Put(New(c, p, data, info.ModTime()))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("Unable to load resources: %w", err)
	}

	return ms, nil
}
