// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/hack-pad/hackpadfs"
)

// FSStore is a Store which reads each resource from a filesystem at request time.  Each Get
// returns either the complete payload or an error, never a partial payload.
type FSStore struct {
	fsys       hackpadfs.FS
	classifier *Classifier
}

// NewFSStore creates a lazy Store over fsys.  The classifier may be nil.
func NewFSStore(fsys hackpadfs.FS, c *Classifier) *FSStore {
	return &FSStore{
		fsys:       fsys,
		classifier: c,
	}
}

func (fss *FSStore) Get(ctx context.Context, p string) (Resource, error) {
	if err := ctx.Err(); err != nil {
		return Resource{}, err
	}

	if !hackpadfs.ValidPath(p) {
		return Resource{}, fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}

	info, err := hackpadfs.Stat(fss.fsys, p)
	switch {
	// a segment beneath a regular file is ENOTDIR rather than ENOENT
	case errors.Is(err, hackpadfs.ErrNotExist), errors.Is(err, hackpadfs.ErrNotDir):
		return Resource{}, fmt.Errorf("%w: %s", ErrNotFound, p)

	case err != nil:
		return Resource{}, err

	case !info.Mode().IsRegular():
		return Resource{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}

	data, err := hackpadfs.ReadFile(fss.fsys, p)
	if err != nil {
		return Resource{}, fmt.Errorf("Unable to read %s: %w", p, err)
	}

	return New(fss.classifier, p, data, info.ModTime()), nil
}
