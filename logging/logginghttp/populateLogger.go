// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request id, either supplied by the client or generated
	RequestIDHeader = "X-Request-Id"

	requestIDKey     = "requestId"
	requestProtoKey  = "requestProto"
	requestMethodKey = "requestMethod"
	requestURIKey    = "requestURI"
	remoteAddrKey    = "remoteAddr"
)

// RequestIDKey returns the contextual logging key for a request's id
func RequestIDKey() string {
	return requestIDKey
}

// RequestProtoKey returns the contextual logging key for an HTTP request's protocol
func RequestProtoKey() string {
	return requestProtoKey
}

// RequestMethodKey returns the contextual logging key for an HTTP request's method
func RequestMethodKey() string {
	return requestMethodKey
}

// RequestURIKey returns the contextual logging key for an HTTP request's unmodified URI
func RequestURIKey() string {
	return requestURIKey
}

// RemoteAddrKey returns the contextual logging key for an HTTP request's remote address,
// as filled in by the enclosing http.Server.
func RemoteAddrKey() string {
	return remoteAddrKey
}

// RequestID returns the id of the request, generating a new ksuid if the client did not supply one
func RequestID(request *http.Request) string {
	if id := request.Header.Get(RequestIDHeader); len(id) > 0 {
		return id
	}

	return ksuid.New().String()
}

// PopulateLogger produces an Alice-style decorator that emits a decorated zap logger into the request context.
// The supplied base Logger is decorated for each request with information about the request.  Downstream code
// can then use this logger via sallusthttp.Get(request).  The request id is echoed in the response.
//
// If the base parameter is not supplied, sallust.Default() is decorated for each request.
func PopulateLogger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = sallust.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
			requestID := RequestID(request)
			rw.Header().Set(RequestIDHeader, requestID)

			ctx := sallust.With(
				request.Context(),
				base.With(
					zap.String(RequestIDKey(), requestID),
					zap.String(RequestProtoKey(), request.Proto),
					zap.String(RequestMethodKey(), request.Method),
					zap.String(RequestURIKey(), request.RequestURI),
					zap.String(RemoteAddrKey(), request.RemoteAddr),
				),
			)

			next.ServeHTTP(rw, request.WithContext(ctx))
		})
	}
}
