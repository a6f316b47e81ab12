// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package resource provides the storage side of the resource server.

A Resource is an opaque byte payload addressed by a slash-separated path.  Resources are
held in a Store, which is populated once from one or more configured sources (local directories,
tar archives, S3 prefixes) and is read-only afterwards.  Nothing in this package ever decodes
a payload as text: the bytes loaded from a source are the bytes handed to callers.
*/
package resource
