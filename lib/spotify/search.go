// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// SearchResult holds one page of results per requested kind. Only the
// requested kinds are non-nil.
type SearchResult struct {
	Artists   *Page[FullArtist]         `json:"artists"`
	Albums    *Page[SimplifiedAlbum]    `json:"albums"`
	Tracks    *Page[FullTrack]          `json:"tracks"`
	Playlists *Page[SimplifiedPlaylist] `json:"playlists"`
	Shows     *Page[SimplifiedShow]     `json:"shows"`
	Episodes  *Page[SimplifiedEpisode]  `json:"episodes"`
}

// SearchOptions controls paging and market filtering for searches.
type SearchOptions struct {
	Market Market
	Limit  int // results per page per kind (max 50, default 20)
	Offset int
}

func (options SearchOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}
	if options.Offset > 0 {
		query.Set("offset", strconv.Itoa(options.Offset))
	}
	return query
}

// Search queries the catalog for the given kinds. At least one kind is
// required; the user kind is not searchable.
func (client *Client) Search(ctx context.Context, query string, kinds []spotifyid.Kind, options SearchOptions) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("searching: empty query")
	}
	typeParam, err := searchTypeParam(kinds)
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}

	params := options.queryParams()
	params.Set("q", query)
	params.Set("type", typeParam)

	var result SearchResult
	if err := client.get(ctx, buildPath("/search", params), &result); err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}
	return &result, nil
}

// searchTypeParam renders the kind list to the comma-joined type
// parameter.
func searchTypeParam(kinds []spotifyid.Kind) (string, error) {
	if len(kinds) == 0 {
		return "", fmt.Errorf("at least one kind is required")
	}

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		switch kind {
		case spotifyid.KindArtist, spotifyid.KindAlbum, spotifyid.KindTrack,
			spotifyid.KindPlaylist, spotifyid.KindShow, spotifyid.KindEpisode:
			names[i] = kind.String()
		default:
			return "", fmt.Errorf("kind %q is not searchable", kind)
		}
	}
	return strings.Join(names, ","), nil
}
