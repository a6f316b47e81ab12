// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resourcehttp

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Route mounts the handler on the router for GET and HEAD requests of any path.  The router
// must not clean paths, so that traversal attempts reach the handler and are rejected rather
// than silently redirected.
func Route(router *mux.Router, h http.Handler) {
	router.SkipClean(true)
	router.Handle("/{"+PathVariable+":.*}", h).Methods(http.MethodGet, http.MethodHead)
}

// NewRouter creates a router serving only the given handler
func NewRouter(h http.Handler) *mux.Router {
	router := mux.NewRouter()
	Route(router, h)
	return router
}
