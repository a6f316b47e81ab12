// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"strconv"
)

// Constant represents an http.Handler that writes prebuilt, constant information to the response writer.
type Constant struct {
	Code   int
	Header http.Header
	Body   []byte
}

// NewJSONConstant produces a Constant that emits the given JSON document
func NewJSONConstant(code int, body string) Constant {
	return Constant{
		Code: code,
		Header: http.Header{
			"Content-Type": {"application/json"},
		},
		Body: []byte(body),
	}
}

// ServeHTTP writes the configured information out to the response.  HEAD requests receive
// the headers and Content-Length without the body.
func (c Constant) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	header := response.Header()
	for k, values := range c.Header {
		for _, v := range values {
			header.Add(k, v)
		}
	}

	if len(c.Body) > 0 {
		header.Set("Content-Length", strconv.Itoa(len(c.Body)))
	}

	response.WriteHeader(c.Code)
	if len(c.Body) > 0 && request.Method != http.MethodHead {
		response.Write(c.Body)
	}
}
