// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"
)

// StaticHeaders returns an Alice-style constructor that emits a static set of headers
// into every response, replacing any values already present.  Keys need not be canonical,
// as headers are often read from configuration rather than built with http.Header methods.
// If the set of headers is empty, the constructor does no decoration.
func StaticHeaders(extra http.Header) func(http.Handler) http.Handler {
	if len(extra) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	canonical := make(http.Header, len(extra))
	for k, v := range extra {
		canonical[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			header := response.Header()
			for k, v := range canonical {
				header[k] = v
			}

			next.ServeHTTP(response, request)
		})
	}
}
