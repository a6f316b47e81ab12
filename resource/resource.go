// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// OctetStream is the media type used for binary content whose type cannot be determined
	OctetStream = "application/octet-stream"

	// sniffLen is the number of leading bytes http.DetectContentType considers
	sniffLen = 512
)

// Classification describes whether a payload is text or binary.  It only ever influences
// response headers; payloads are never transcoded based on it.
type Classification int

const (
	Binary Classification = iota
	Text
)

func (c Classification) String() string {
	switch c {
	case Text:
		return "text"
	default:
		return "binary"
	}
}

// MarshalText allows a Classification to appear in configuration and JSON
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses "text" or "binary", ignoring case
func (c *Classification) UnmarshalText(raw []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(raw))) {
	case "text":
		*c = Text
	case "binary":
		*c = Binary
	default:
		return fmt.Errorf("Unsupported classification: %s", raw)
	}

	return nil
}

// Resource is a named byte payload.  Data is owned by the Resource and must not be modified
// once the Resource has been placed in a Store.
type Resource struct {
	// Path is the slash-separated, rooted-less path of this resource, e.g. "foo/bar/rm.jpg"
	Path string

	// Data is the exact payload.
	Data []byte

	// Classification is the text/binary classification of Data
	Classification Classification

	// ContentType is the media type to report for this resource
	ContentType string

	// ModTime is the modification time reported by the source, possibly zero
	ModTime time.Time

	// ETag is the strong entity tag of Data, already quoted
	ETag string
}

// Name returns the last element of this resource's path
func (r Resource) Name() string {
	return path.Base(r.Path)
}

// ETag computes the strong, quoted entity tag for a payload
func ETag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// knownTypes supplements the mime package for common configuration formats, which
// the platform mime tables frequently omit.
var knownTypes = map[string]string{
	".yml":        "application/yaml",
	".yaml":       "application/yaml",
	".properties": "text/plain",
	".toml":       "application/toml",
	".conf":       "text/plain",
	".ini":        "text/plain",
	".md":         "text/markdown",
}

// textTypes are non text/* media types whose payloads are textual
var textTypes = map[string]bool{
	"application/json":       true,
	"application/xml":        true,
	"application/yaml":       true,
	"application/toml":       true,
	"application/javascript": true,
	"image/svg+xml":          true,
}

// Classifier determines the Classification and Content-Type of a payload.  The zero value
// is ready to use.
type Classifier struct {
	// Overrides maps a lower-cased file extension, including the dot, to a forced classification.
	// A forced Text classification still requires the payload to be valid UTF-8.
	Overrides map[string]Classification
}

// Classify examines a name and its payload.  The extension is consulted first, and the payload is
// sniffed only when the extension is unknown.  A payload is classified as Text only if its media type
// is textual and the bytes are valid UTF-8; the charset parameter is only attached to Text.
func (c *Classifier) Classify(name string, data []byte) (Classification, string) {
	ext := strings.ToLower(path.Ext(name))
	mediaType := knownTypes[ext]
	if len(mediaType) == 0 && len(ext) > 0 {
		mediaType = mime.TypeByExtension(ext)
	}

	if len(mediaType) == 0 {
		sniff := data
		if len(sniff) > sniffLen {
			sniff = sniff[:sniffLen]
		}

		mediaType = http.DetectContentType(sniff)
	}

	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	} else {
		mediaType = OctetStream
	}

	textual := strings.HasPrefix(mediaType, "text/") ||
		textTypes[mediaType] ||
		strings.HasSuffix(mediaType, "+json") ||
		strings.HasSuffix(mediaType, "+xml")

	if c != nil {
		if forced, ok := c.Overrides[ext]; ok {
			switch {
			case forced == Text && !textual:
				mediaType = "text/plain"
			case forced == Binary && textual:
				mediaType = OctetStream
			}

			textual = forced == Text
		}
	}

	switch {
	case !textual:
		return Binary, mediaType

	case utf8.Valid(data):
		return Text, mediaType + "; charset=utf-8"

	default:
		// a textual name over bytes that are not UTF-8 must not invite clients to decode it
		return Binary, OctetStream
	}
}

// New produces a Resource for the given path and payload, classifying it with the supplied
// Classifier, which may be nil.  The payload is retained, not copied.
func New(c *Classifier, p string, data []byte, modTime time.Time) Resource {
	classification, contentType := c.Classify(p, data)
	return Resource{
		Path:           p,
		Data:           data,
		Classification: classification,
		ContentType:    contentType,
		ModTime:        modTime,
		ETag:           ETag(data),
	}
}
