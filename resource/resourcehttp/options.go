// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resourcehttp

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

var errInvalidMediaType = errors.New("invalid media type")

// Options are the per-request options carried in the query string.  Unrecognized query
// parameters are ignored.
type Options struct {
	// ContentType overrides the Content-Type of the response
	ContentType string `schema:"contentType"`

	// Download requests a Content-Disposition of attachment.  The value must be a boolean
	// as strconv.ParseBool reads it, or "on".  An empty value is false.  Anything else is
	// rejected with a 400 rather than being treated as false.
	Download bool `schema:"download"`
}

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeOptions parses the query options from a request's URL
func decodeOptions(d *schema.Decoder, query url.Values) (Options, error) {
	var o Options
	if err := d.Decode(&o, query); err != nil {
		return Options{}, err
	}

	return o, nil
}

// parseMediaType validates and normalizes a concrete media type, e.g. "image/jpeg"
func parseMediaType(v string) (string, error) {
	mediaType, params, err := mime.ParseMediaType(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidMediaType, v)
	}

	if slash := strings.IndexByte(mediaType, '/'); slash < 1 || slash == len(mediaType)-1 || strings.Contains(mediaType, "*") {
		return "", fmt.Errorf("%w: %q", errInvalidMediaType, v)
	}

	// quality values belong to content negotiation, not to the response
	delete(params, "q")
	return mime.FormatMediaType(mediaType, params), nil
}

// overrideContentType determines any Content-Type requested by the client.  The contentType
// query option takes precedence.  Otherwise, an Accept header naming exactly one concrete media
// type is honored.  Wildcards and lists of types are not overrides.  An empty string is
// returned if the client requested no override.
func overrideContentType(o Options, header http.Header) (string, error) {
	if len(o.ContentType) > 0 {
		return parseMediaType(o.ContentType)
	}

	accept := header.Values("Accept")
	if len(accept) != 1 {
		return "", nil
	}

	value := strings.TrimSpace(accept[0])
	if len(value) == 0 || strings.ContainsAny(value, ",*") {
		return "", nil
	}

	return parseMediaType(value)
}
