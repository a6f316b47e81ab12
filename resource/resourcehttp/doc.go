// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package resourcehttp exposes a resource.Store over HTTP.  GET and HEAD requests for /{path}
receive the exact stored bytes of the resource at path.
*/
package resourcehttp
