// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

const (
	testTextPath   = "foo/bar/text.txt"
	testBinaryPath = "foo/bar/rm.jpg"
)

// testFixtures reads the checked-in text and binary fixtures as raw bytes
func testFixtures(t *testing.T) map[string][]byte {
	fixtures := make(map[string][]byte, 2)
	for _, p := range []string{testTextPath, testBinaryPath} {
		data, err := os.ReadFile(filepath.Join("..", "testdata", "files", filepath.FromSlash(p)))
		require.NoError(t, err)
		fixtures[p] = data
	}

	return fixtures
}

func testFixtureDir(t *testing.T) string {
	dir, err := filepath.Abs(filepath.Join("..", "testdata", "files"))
	require.NoError(t, err)
	return dir
}

// newTestMemFS builds an in-memory filesystem holding the given files
func newTestMemFS(t *testing.T, files map[string][]byte) *mem.FS {
	fsys, err := mem.NewFS()
	require.NoError(t, err)

	for name, data := range files {
		require.NoError(t, writeFile(fsys, name, data))
	}

	return fsys
}

// newTestArchive builds a tar archive, optionally gzipped, holding the given files
func newTestArchive(t *testing.T, files map[string][]byte, compressed bool) []byte {
	var (
		output bytes.Buffer
		gz     *gzip.Writer
		tw     *tar.Writer
	)

	if compressed {
		gz = gzip.NewWriter(&output)
		tw = tar.NewWriter(gz)
	} else {
		tw = tar.NewWriter(&output)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)
	dirSet := make(map[string]bool)
	for _, name := range names {
		for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
			dirSet[dir] = true
		}
	}

	dirs := make([]string, 0, len(dirSet))
	for dir := range dirSet {
		dirs = append(dirs, dir)
	}

	// sorting places every parent ahead of its children
	sort.Strings(dirs)
	for _, dir := range dirs {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Typeflag: tar.TypeDir,
			Name:     dir + "/",
			Mode:     0o755,
			ModTime:  time.Unix(1600000000, 0),
		}))
	}

	for _, name := range names {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Typeflag: tar.TypeReg,
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(files[name])),
			ModTime:  time.Unix(1600000000, 0),
		}))

		_, err := tw.Write(files[name])
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	if gz != nil {
		require.NoError(t, gz.Close())
	}

	return output.Bytes()
}

// writeTestArchive writes an archive into a temporary directory, returning its path
func writeTestArchive(t *testing.T, name string, files map[string][]byte) string {
	compressed := isGzip(name)
	archivePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(archivePath, newTestArchive(t, files, compressed), 0o644))
	return archivePath
}
