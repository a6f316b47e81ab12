// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resourcehttp

import (
	"bytes"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/xmidt-org/resourceserver/resource"
	"github.com/xmidt-org/resourceserver/xhttp"
	"github.com/xmidt-org/sallust/sallusthttp"
	"go.uber.org/zap"
)

const (
	// PathVariable is the gorilla/mux route variable holding the requested resource path
	PathVariable = "path"
)

// Handler serves the resources in a Store.  The response body is always the complete, unmodified
// payload of the resource.  No text decoding or encoding is ever applied, regardless of classification
// or Content-Type.
type Handler struct {
	store    resource.Store
	measures Measures
	decoder  *schema.Decoder
}

// NewHandler creates a Handler over the given store
func NewHandler(store resource.Store, measures Measures) *Handler {
	return &Handler{
		store:    store,
		measures: measures,
		decoder:  newDecoder(),
	}
}

func (h *Handler) count(outcome string) {
	h.measures.Requests.With(OutcomeLabel, outcome).Add(1.0)
}

// requestPath obtains the raw request path, including its leading slash, from the route
// variables.  The URL path is used when the handler is not routed through gorilla/mux.
func requestPath(request *http.Request) string {
	if p, ok := mux.Vars(request)[PathVariable]; ok {
		return "/" + p
	}

	return request.URL.Path
}

func (h *Handler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	logger := sallusthttp.Get(request)

	p, err := resource.CleanPath(requestPath(request))
	if err != nil {
		h.count(InvalidOutcome)
		logger.Debug("rejected resource path", zap.Error(err))
		xhttp.WriteError(response, http.StatusBadRequest, err)
		return
	}

	o, err := decodeOptions(h.decoder, request.URL.Query())
	if err != nil {
		h.count(BadOverrideOutcome)
		xhttp.WriteErrorf(response, http.StatusBadRequest, "invalid query options: %s", err)
		return
	}

	contentType, err := overrideContentType(o, request.Header)
	if err != nil {
		h.count(BadOverrideOutcome)
		xhttp.WriteError(response, http.StatusBadRequest, err)
		return
	}

	r, err := h.store.Get(request.Context(), p)
	switch {
	case errors.Is(err, resource.ErrNotFound):
		h.count(NotFoundOutcome)
		response.WriteHeader(http.StatusNotFound)
		return

	case errors.Is(err, resource.ErrInvalidPath):
		h.count(InvalidOutcome)
		xhttp.WriteError(response, http.StatusBadRequest, err)
		return

	case err != nil:
		h.count(ErrorOutcome)
		logger.Error("unable to read resource", zap.String("path", p), zap.Error(err))
		xhttp.WriteErrorf(response, http.StatusInternalServerError, "unable to read resource %s", p)
		return
	}

	if len(contentType) == 0 {
		contentType = r.ContentType
	}

	header := response.Header()
	header.Set("Content-Type", contentType)
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Etag", r.ETag)
	if o.Download {
		header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": r.Name()}))
	}

	h.count(SuccessOutcome)
	if request.Method == http.MethodGet {
		h.measures.BytesServed.Add(float64(len(r.Data)))
	}

	logger.Debug(
		"serving resource",
		zap.String("path", r.Path),
		zap.Stringer("classification", r.Classification),
		zap.String("contentType", contentType),
		zap.Int("length", len(r.Data)),
	)

	// ServeContent handles HEAD, ranges and conditional requests over the exact stored bytes
	http.ServeContent(response, request, r.Name(), r.ModTime, bytes.NewReader(r.Data))
}
