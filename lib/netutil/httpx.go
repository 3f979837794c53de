// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP I/O helpers.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 16 MB.
// This exists solely to prevent a pathological response from exhausting
// memory. The Web API's largest legitimate payloads (full playlist
// pages, multi-entity batches) sit well under a megabyte; the limit is
// generous so that it never interferes with normal operation.
const MaxResponseSize int64 = 16 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
// It is for API responses, not for streaming or large binary downloads,
// which should be read incrementally with io.Copy.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
