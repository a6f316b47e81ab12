// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorBody is the JSON representation of an error response
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WriteErrorf provides printf-style functionality for writing out the results of some operation.
// The response status code is set to code, and a JSON message of the form {"code": %d, "message": "%s"} is
// written as the response body.  fmt.Sprintf is used to turn the format and parameters into a single string
// for the message.
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) (int, error) {
	return WriteError(response, code, fmt.Sprintf(format, parameters...))
}

// WriteError provides print-style functionality for writing a JSON message as a response.  No format parameters
// are used.  The value parameter is subjected to the default stringizing rules of the fmt package, and is
// escaped as a JSON string.
func WriteError(response http.ResponseWriter, code int, value interface{}) (int, error) {
	body, err := json.Marshal(errorBody{
		Code:    code,
		Message: fmt.Sprint(value),
	})

	if err != nil {
		return 0, err
	}

	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)

	return response.Write(body)
}
