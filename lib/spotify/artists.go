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

// SimplifiedArtist is the artist reference embedded in tracks and
// albums.
type SimplifiedArtist struct {
	ExternalURLs ExternalURLs       `json:"external_urls"`
	ID           spotifyid.ArtistID `json:"id"`
	Name         string             `json:"name"`
}

// FullArtist is the complete artist object.
type FullArtist struct {
	ExternalURLs ExternalURLs       `json:"external_urls"`
	Followers    Followers          `json:"followers"`
	Genres       []string           `json:"genres"`
	ID           spotifyid.ArtistID `json:"id"`
	Images       []Image            `json:"images"`
	Name         string             `json:"name"`
	Popularity   int                `json:"popularity"`
}

// ArtistAlbumsOptions controls filtering and paging for an artist's
// albums.
type ArtistAlbumsOptions struct {
	// IncludeGroups filters by album kind: "album", "single",
	// "appears_on", "compilation". Empty means all.
	IncludeGroups []string

	Market Market
	Limit  int // results per page (max 50, default 20)
	Offset int
}

func (options ArtistAlbumsOptions) queryParams() url.Values {
	query := url.Values{}
	if len(options.IncludeGroups) > 0 {
		query.Set("include_groups", strings.Join(options.IncludeGroups, ","))
	}
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

// Artist retrieves a single artist.
func (client *Client) Artist(ctx context.Context, id spotifyid.ArtistRef) (*FullArtist, error) {
	var artist FullArtist
	if err := client.get(ctx, "/artists/"+id.ID(), &artist); err != nil {
		return nil, fmt.Errorf("getting artist %s: %w", id.ID(), err)
	}
	return &artist, nil
}

// Artists retrieves up to 50 artists in one request. The result
// preserves the input order; an unknown id yields a nil entry.
func (client *Client) Artists(ctx context.Context, ids []spotifyid.ArtistRef) ([]*FullArtist, error) {
	query := url.Values{"ids": {joinIDs(ids)}}

	var result struct {
		Artists []*FullArtist `json:"artists"`
	}
	if err := client.get(ctx, buildPath("/artists", query), &result); err != nil {
		return nil, fmt.Errorf("getting %d artists: %w", len(ids), err)
	}
	return result.Artists, nil
}

// ArtistAlbums returns a paginated iterator over an artist's albums.
func (client *Client) ArtistAlbums(ctx context.Context, id spotifyid.ArtistRef, options ArtistAlbumsOptions) *Pager[SimplifiedAlbum] {
	basePath := "/artists/" + id.ID() + "/albums"
	return newPager[SimplifiedAlbum](client, buildPath(basePath, options.queryParams()))
}

// ArtistTopTracks retrieves an artist's top tracks. The market is
// required by the API.
func (client *Client) ArtistTopTracks(ctx context.Context, id spotifyid.ArtistRef, market Market) ([]FullTrack, error) {
	if market == "" {
		return nil, fmt.Errorf("getting top tracks for artist %s: market is required", id.ID())
	}
	query := url.Values{"market": {market.String()}}

	var result struct {
		Tracks []FullTrack `json:"tracks"`
	}
	path := buildPath("/artists/"+id.ID()+"/top-tracks", query)
	if err := client.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("getting top tracks for artist %s: %w", id.ID(), err)
	}
	return result.Tracks, nil
}
