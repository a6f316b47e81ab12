// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hack-pad/hackpadfs"
)

var (
	// ErrNotFound indicates that no resource exists at a path
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidPath indicates a malformed resource path, such as a traversal attempt
	ErrInvalidPath = errors.New("invalid resource path")
)

// CleanPath converts a request path into a store path.  A single leading slash is removed.  The
// remainder must be a valid filesystem path: no empty, "." or ".." elements, no trailing slash,
// no backslashes and no NUL bytes.  Paths are never silently normalized; anything that would need
// normalizing is rejected with ErrInvalidPath.
func CleanPath(requestPath string) (string, error) {
	p := strings.TrimPrefix(requestPath, "/")
	switch {
	case len(p) == 0, p == ".":
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)

	case strings.ContainsAny(p, "\\\x00"):
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, requestPath)

	case !hackpadfs.ValidPath(p):
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, requestPath)
	}

	return p, nil
}
