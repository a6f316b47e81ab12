// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hack-pad/hackpadfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryURL(t *testing.T) {
	var testData = []struct {
		uri            string
		expectedScheme string
		expectError    bool
	}{
		{"/etc/resources", FileScheme, false},
		{"relative/dir", FileScheme, false},
		{"file:///etc/resources", FileScheme, false},
		{"http://example.com/resources.tar", HttpScheme, false},
		{"https://example.com/resources.tar.gz", HttpsScheme, false},
		{"s3://bucket/prefix", S3Scheme, false},
		{"ftp://example.com/resources.tar", "", true},
		{"", "", true},
	}

	for _, record := range testData {
		t.Run(record.uri, func(t *testing.T) {
			assert := assert.New(t)
			f := Factory{URI: record.uri}

			actual, err := f.URL()
			if record.expectError {
				assert.Error(err)
				assert.Nil(actual)
				return
			}

			assert.NoError(err)
			assert.Equal(record.expectedScheme, actual.Scheme)
		})
	}

	t.Run("NoSource", func(t *testing.T) {
		_, err := new(Factory).URL()
		assert.Equal(t, ErrNoSource, err)
	})
}

func assertFixtures(t *testing.T, fsys hackpadfs.FS, prefix string, fixtures map[string][]byte) {
	for p, expected := range fixtures {
		if len(prefix) > 0 {
			p = prefix + "/" + p
		}

		actual, err := hackpadfs.ReadFile(fsys, p)
		require.NoError(t, err, p)
		assert.Equal(t, expected, actual, p)
	}
}

func TestFactoryNewFS(t *testing.T) {
	var (
		fixtures   = testFixtures(t)
		archive    = newTestArchive(t, fixtures, false)
		gzArchive  = newTestArchive(t, fixtures, true)
		httpServer = httptest.NewServer(http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/resources.tar":
				response.Write(archive)
			case "/resources.tgz":
				response.Write(gzArchive)
			case "/corrupt.tar.gz":
				response.Write(archive)
			default:
				response.WriteHeader(http.StatusNotFound)
			}
		}))
	)

	defer httpServer.Close()

	var testData = []struct {
		description string
		factory     Factory
		expectError error
	}{
		{"Directory", Factory{URI: testFixtureDir(t)}, nil},
		{"FileURI", Factory{URI: "file://" + filepath.ToSlash(testFixtureDir(t))}, nil},
		{"Tar", Factory{URI: writeTestArchive(t, "resources.tar", fixtures)}, nil},
		{"TarGz", Factory{URI: writeTestArchive(t, "resources.tar.gz", fixtures)}, nil},
		{"HTTPTar", Factory{URI: httpServer.URL + "/resources.tar"}, nil},
		{"HTTPTgz", Factory{URI: httpServer.URL + "/resources.tgz", HTTPClient: httpServer.Client()}, nil},
	}

	for _, record := range testData {
		t.Run(record.description, func(t *testing.T) {
			fsys, err := record.factory.NewFS(context.Background())
			require.NoError(t, err)
			require.NotNil(t, fsys)
			assertFixtures(t, fsys, "", fixtures)
		})
	}

	t.Run("HTTPNotArchive", func(t *testing.T) {
		f := Factory{URI: httpServer.URL + "/resources"}
		fsys, err := f.NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.True(t, errors.Is(err, ErrNotArchive))
	})

	t.Run("HTTPMissing", func(t *testing.T) {
		f := Factory{URI: httpServer.URL + "/missing.tar"}
		fsys, err := f.NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.Error(t, err)
	})

	t.Run("HTTPCorrupt", func(t *testing.T) {
		f := Factory{URI: httpServer.URL + "/corrupt.tar.gz"}
		fsys, err := f.NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.Error(t, err)
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		f := Factory{URI: filepath.Join(t.TempDir(), "nosuch")}
		fsys, err := f.NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.Error(t, err)
	})

	t.Run("RegularFile", func(t *testing.T) {
		f := Factory{URI: filepath.Join(testFixtureDir(t), filepath.FromSlash(testTextPath))}
		fsys, err := f.NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.Error(t, err)
	})

	t.Run("S3", func(t *testing.T) {
		var (
			api     = new(mockS3)
			modTime = time.Unix(1650000000, 0)
		)

		api.On("ListObjectsV2PagesWithContext", "bucket", "prefix/").Return(
			[]*s3.ListObjectsV2Output{{Contents: []*s3.Object{s3Object("prefix/"+testTextPath, modTime)}}},
			nil,
		).Once()

		api.On("GetObjectWithContext", "bucket", "prefix/"+testTextPath).Return(s3Body(fixtures[testTextPath]), nil).Once()

		f := Factory{URI: "s3://bucket/prefix", S3: api}
		fsys, err := f.NewFS(context.Background())
		require.NoError(t, err)

		actual, err := hackpadfs.ReadFile(fsys, testTextPath)
		require.NoError(t, err)
		assert.Equal(t, fixtures[testTextPath], actual)
		api.AssertExpectations(t)
	})
}

func TestNewFS(t *testing.T) {
	var (
		fixtures = testFixtures(t)
		dir      = testFixtureDir(t)
	)

	t.Run("Single", func(t *testing.T) {
		fsys, err := NewFS(context.Background(), Factory{URI: dir})
		require.NoError(t, err)
		assertFixtures(t, fsys, "", fixtures)
	})

	t.Run("Prefixed", func(t *testing.T) {
		fsys, err := NewFS(
			context.Background(),
			Factory{URI: dir, Prefix: "/static/"},
			Factory{URI: writeTestArchive(t, "resources.tgz", fixtures), Prefix: "archived/v1"},
		)

		require.NoError(t, err)
		assertFixtures(t, fsys, "static", fixtures)
		assertFixtures(t, fsys, "archived/v1", fixtures)

		_, err = hackpadfs.ReadFile(fsys, testTextPath)
		assert.True(t, errors.Is(err, hackpadfs.ErrNotExist))
	})

	t.Run("RootAndPrefix", func(t *testing.T) {
		fsys, err := NewFS(
			context.Background(),
			Factory{URI: dir},
			Factory{URI: writeTestArchive(t, "resources.tar", fixtures), Prefix: "foo/bar"},
		)

		require.NoError(t, err)
		assertFixtures(t, fsys, "foo/bar", fixtures)
	})

	t.Run("NoFactories", func(t *testing.T) {
		fsys, err := NewFS(context.Background())
		assert.Nil(t, fsys)
		assert.Equal(t, ErrNoSourcesDefined, err)
	})

	t.Run("DuplicatePrefix", func(t *testing.T) {
		fsys, err := NewFS(
			context.Background(),
			Factory{URI: dir, Prefix: "a"},
			Factory{URI: dir, Prefix: "/a/"},
		)

		assert.Nil(t, fsys)
		assert.True(t, errors.Is(err, ErrDuplicatePrefix))
	})

	t.Run("DuplicateRoot", func(t *testing.T) {
		fsys, err := NewFS(
			context.Background(),
			Factory{URI: dir},
			Factory{URI: dir},
		)

		assert.Nil(t, fsys)
		assert.True(t, errors.Is(err, ErrDuplicatePrefix))
	})

	t.Run("InvalidPrefix", func(t *testing.T) {
		fsys, err := NewFS(context.Background(), Factory{URI: dir, Prefix: "a/../.."})
		assert.Nil(t, fsys)
		assert.True(t, errors.Is(err, ErrInvalidPrefix))
	})

	t.Run("BadSource", func(t *testing.T) {
		fsys, err := NewFS(context.Background(), Factory{URI: "ftp://example.com/a.tar"})
		assert.Nil(t, fsys)
		assert.Error(t, err)
	})
}
