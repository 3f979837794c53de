// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// maxCollectPages bounds Collect. The API's next hrefs are trusted to
// terminate, but a pager that keeps returning pages past this point is
// runaway iteration, not a big playlist.
const maxCollectPages = 200

// Page is the standard paging envelope wrapping list results.
type Page[T any] struct {
	// Href is the API URL returning this page.
	Href string `json:"href"`

	// Items are the page's results.
	Items []T `json:"items"`

	// Limit is the page size that was applied.
	Limit int `json:"limit"`

	// Next is the URL of the following page, empty on the last page.
	Next string `json:"next"`

	// Offset is the index of the first item within the full result.
	Offset int `json:"offset"`

	// Previous is the URL of the preceding page, empty on the first.
	Previous string `json:"previous"`

	// Total is the number of items in the full result.
	Total int `json:"total"`
}

// Cursors is the position marker pair on a cursor-paged envelope.
type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// CursorPage is the cursor-based paging envelope used by endpoints that
// page over a stream (recently-played) rather than a counted list.
type CursorPage[T any] struct {
	Href    string  `json:"href"`
	Items   []T     `json:"items"`
	Limit   int     `json:"limit"`
	Next    string  `json:"next"`
	Cursors Cursors `json:"cursors"`
	Total   int     `json:"total"`
}

// Pager lazily fetches pages of results from a paginated endpoint by
// following next hrefs. Each call to Next fetches one page and returns
// its items; (nil, nil) signals exhaustion.
//
// The pager is not safe for concurrent use.
type Pager[T any] struct {
	client  *Client
	nextURL string
	done    bool
}

// newPager creates a Pager whose first fetch hits the given path
// (relative to the client's base URL, query included).
func newPager[T any](client *Client, path string) *Pager[T] {
	return &Pager[T]{
		client:  client,
		nextURL: client.baseURL + path,
	}
}

// Next fetches the next page of results. Returns (nil, nil) when no
// more pages are available. Iteration stops at an empty page or an
// absent next href, whichever comes first. Each page fetch is
// authenticated and backoff-handled like any other API call.
func (pager *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if pager.done || pager.nextURL == "" {
		return nil, nil
	}

	body, err := pager.client.doWithRetry(ctx, http.MethodGet, pager.nextURL, nil, false)
	if err != nil {
		return nil, err
	}

	var page Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("spotify: decoding page: %w", err)
	}

	pager.nextURL = page.Next
	if pager.nextURL == "" {
		pager.done = true
	}

	if len(page.Items) == 0 {
		pager.done = true
		return nil, nil
	}

	return page.Items, nil
}

// Collect fetches all remaining pages and returns the items
// concatenated. Convenience for callers that want the full result at
// once; errors out if the page count exceeds maxCollectPages.
func (pager *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for pageCount := 0; ; pageCount++ {
		if pageCount >= maxCollectPages {
			return all, fmt.Errorf("spotify: pagination exceeded %d pages", maxCollectPages)
		}
		items, err := pager.Next(ctx)
		if err != nil {
			return all, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}
