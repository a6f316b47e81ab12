// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// httpClient is the behavior required of an HTTP client.  *http.Client implements this interface.
type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Loader represents a type that can load raw bytes, potentially from outside the running process.
type Loader interface {
	// Location returns a string identifying where this Loader gets its data from
	Location() string

	// Open returns a ReadCloser that reads this loader's data.
	Open(context.Context) (io.ReadCloser, error)
}

// File is a Loader for a system file
type File struct {
	Path string
}

func (f *File) Location() string {
	return f.Path
}

func (f *File) Open(context.Context) (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// HTTP is a Loader which obtains its data with an HTTP request.  Only 200 responses are
// considered successful.
type HTTP struct {
	URL    string
	Header http.Header

	// HTTPClient is the client used to issue requests.  If unset, http.DefaultClient is used.
	HTTPClient httpClient
}

func (h *HTTP) Location() string {
	return h.URL
}

func (h *HTTP) Open(ctx context.Context) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, err
	}

	for name, values := range h.Header {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	client := h.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		io.Copy(io.Discard, response.Body)
		response.Body.Close()
		return nil, fmt.Errorf("Unable to access [%s]: server returned %s", h.URL, response.Status)
	}

	return response.Body, nil
}
