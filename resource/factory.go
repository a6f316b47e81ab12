// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/hack-pad/hackpadfs/mount"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/hack-pad/hackpadfs/tar"
)

const (
	// NoScheme indicates the value of a URI without a scheme prefix, e.g. "/etc/appname/files"
	NoScheme = ""

	// FileScheme indicates a file URI according to https://en.wikipedia.org/wiki/File_URI_scheme.
	// When a URL is parsed that has no scheme, url.URL.Scheme is set to this value.
	FileScheme = "file"

	// HttpScheme is plain old HTTP
	HttpScheme = "http"

	// HttpsScheme is secure HTTP
	HttpsScheme = "https"

	// S3Scheme denotes an S3 bucket and key prefix, e.g. s3://bucket/some/prefix
	S3Scheme = "s3"
)

var (
	// supportedSchemes provides a quick, map-based way to test for a valid scheme
	supportedSchemes = map[string]bool{
		FileScheme:  true,
		HttpScheme:  true,
		HttpsScheme: true,
		S3Scheme:    true,
	}

	ErrNoSource         = errors.New("A source URI is required")
	ErrNotArchive       = errors.New("HTTP sources must be tar archives")
	ErrDuplicatePrefix  = errors.New("Only one source may be mounted at a given prefix")
	ErrInvalidPrefix    = errors.New("A source prefix must be a valid relative path")
	ErrBucketRequired   = errors.New("An S3 source requires a bucket")
	ErrNoSourcesDefined = errors.New("At least one source is required")
)

// Factory describes a single source of resources.  This type allows resource sources to be
// configured externally, e.g. via Viper.
type Factory struct {
	// URI is the location of the source.  This can be a filesystem path to a directory or a tar archive,
	// a file:// URI, an http:// or https:// URI of a tar archive, or an s3://bucket/prefix URI.
	URI string `json:"uri"`

	// Prefix is the store path under which this source's resources appear.  If empty, the source's
	// resources appear at the root.
	Prefix string `json:"prefix"`

	// Header supplies any HTTP headers to use when obtaining an archive.
	// Ignored if URI is not an HTTP or HTTPS URI.
	Header http.Header `json:"header"`

	// Region is the AWS region of an S3 source.  Ignored for other sources.
	Region string `json:"region"`

	// Endpoint is an optional S3-compatible endpoint.  Ignored for other sources.
	Endpoint string `json:"endpoint"`

	// HTTPClient is used to fetch HTTP archives.  If not supplied, http.DefaultClient is used.
	HTTPClient httpClient `json:"-"`

	// S3 is the S3 client to use.  If not supplied, one is created from Region and Endpoint.
	S3 s3iface.S3API `json:"-"`
}

// URL returns the parsed URI of this factory.  URIs without a scheme are treated as files.
func (f *Factory) URL() (*url.URL, error) {
	if len(f.URI) == 0 {
		return nil, ErrNoSource
	}

	sourceURL, err := url.Parse(f.URI)
	if err != nil {
		return nil, err
	} else if len(sourceURL.Scheme) == 0 {
		sourceURL.Scheme = FileScheme
	} else if !supportedSchemes[sourceURL.Scheme] {
		return nil, fmt.Errorf("Unsupported scheme: %s", sourceURL.Scheme)
	}

	return sourceURL, nil
}

func (f *Factory) prefix() (string, error) {
	p := strings.Trim(f.Prefix, "/")
	if len(p) == 0 {
		return "", nil
	}

	if _, err := CleanPath(p); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, f.Prefix)
	}

	return p, nil
}

// NewFS produces the filesystem for this factory's source.  Archives and S3 objects are read
// completely before this method returns.
func (f *Factory) NewFS(ctx context.Context) (hackpadfs.FS, error) {
	sourceURL, err := f.URL()
	if err != nil {
		return nil, err
	}

	switch sourceURL.Scheme {
	case FileScheme:
		if isArchive(sourceURL.Path) {
			return newArchiveFS(ctx, &File{Path: sourceURL.Path}, isGzip(sourceURL.Path))
		}

		return newDirectoryFS(sourceURL.Path)

	case S3Scheme:
		api := f.S3
		if api == nil {
			if api, err = newS3API(f.Region, f.Endpoint); err != nil {
				return nil, err
			}
		}

		return newS3FS(ctx, api, sourceURL.Host, sourceURL.Path)

	default:
		if !isArchive(sourceURL.Path) {
			return nil, fmt.Errorf("%w: %s", ErrNotArchive, f.URI)
		}

		loader := &HTTP{
			URL:        sourceURL.String(),
			Header:     f.Header,
			HTTPClient: f.HTTPClient,
		}

		return newArchiveFS(ctx, loader, isGzip(sourceURL.Path))
	}
}

func isGzip(p string) bool {
	p = strings.ToLower(p)
	return strings.HasSuffix(p, ".tar.gz") || strings.HasSuffix(p, ".tgz")
}

func isArchive(p string) bool {
	return isGzip(p) || strings.HasSuffix(strings.ToLower(p), ".tar")
}

func newDirectoryFS(dir string) (hackpadfs.FS, error) {
	abs, err := filepath.Abs(filepath.FromSlash(dir))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, fmt.Errorf("Source %s is neither a directory nor a tar archive", dir)
	}

	root := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if len(root) == 0 {
		root = "."
	}

	return osfs.NewFS().Sub(root)
}

// gzipReadCloser closes both the decompressor and the underlying stream
type gzipReadCloser struct {
	*gzip.Reader
	source io.Closer
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if sourceErr := g.source.Close(); err == nil {
		err = sourceErr
	}

	return err
}

func newArchiveFS(ctx context.Context, loader Loader, compressed bool) (hackpadfs.FS, error) {
	var (
		reader io.ReadCloser
		err    error
	)

	if reader, err = loader.Open(ctx); err != nil {
		return nil, err
	}

	if compressed {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			reader.Close()
			return nil, fmt.Errorf("Unable to decompress %s: %w", loader.Location(), err)
		}

		reader = gzipReadCloser{Reader: gz, source: reader}
	}

	// the archive filesystem closes the reader once unpacking completes
	archive, err := tar.NewReaderFS(ctx, reader, tar.ReaderFSOptions{})
	if err != nil {
		reader.Close()
		return nil, err
	}

	select {
	case <-archive.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := archive.UnarchiveErr(); err != nil {
		return nil, fmt.Errorf("Unable to unpack %s: %w", loader.Location(), err)
	}

	return archive, nil
}

// NewFS composes the sources described by a set of factories into a single filesystem, each source
// mounted at its prefix.  At most one factory may omit a prefix; that source becomes the root.  When
// a source is mounted beneath a root source, the mount point must already exist as a directory
// within the root source.
func NewFS(ctx context.Context, factories ...Factory) (hackpadfs.FS, error) {
	if len(factories) == 0 {
		return nil, ErrNoSourcesDefined
	}

	var (
		root     hackpadfs.FS
		prefixed = make(map[string]hackpadfs.FS, len(factories))
		order    = make([]string, 0, len(factories))
	)

	for i := range factories {
		prefix, err := factories[i].prefix()
		if err != nil {
			return nil, err
		}

		if _, exists := prefixed[prefix]; exists || (len(prefix) == 0 && root != nil) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePrefix, prefix)
		}

		sourceFS, err := factories[i].NewFS(ctx)
		if err != nil {
			return nil, fmt.Errorf("Unable to open source %s: %w", factories[i].URI, err)
		}

		if len(prefix) == 0 {
			root = sourceFS
		} else {
			prefixed[prefix] = sourceFS
			order = append(order, prefix)
		}
	}

	if len(prefixed) == 0 {
		return root, nil
	}

	if root == nil {
		memRoot, err := mem.NewFS()
		if err != nil {
			return nil, err
		}

		for _, prefix := range order {
			if err := memRoot.MkdirAll(prefix, 0o755); err != nil {
				return nil, err
			}
		}

		root = memRoot
	}

	composite, err := mount.NewFS(root)
	if err != nil {
		return nil, err
	}

	// mount parents before children so that nested mount points resolve
	sort.SliceStable(order, func(i, j int) bool {
		return strings.Count(order[i], "/") < strings.Count(order[j], "/")
	})

	for _, prefix := range order {
		if err := composite.AddMount(prefix, prefixed[prefix]); err != nil {
			return nil, err
		}
	}

	return composite, nil
}
