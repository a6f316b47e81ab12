// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server provides the standard approach to executing the resource server.

An application supplies its primary http.Handler, named "primary", along with any metrics it
needs in the "metrics" group.  Module then wires configuration, logging, metrics, and the
lifecycle of both the primary and health servers into an fx application.
*/
package server
