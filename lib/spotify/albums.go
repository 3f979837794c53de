// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// SimplifiedAlbum is the album reference embedded in tracks and search
// results.
type SimplifiedAlbum struct {
	AlbumType            string             `json:"album_type"` // "album", "single", "compilation"
	Artists              []SimplifiedArtist `json:"artists"`
	ExternalURLs         ExternalURLs       `json:"external_urls"`
	ID                   spotifyid.AlbumID  `json:"id"`
	Images               []Image            `json:"images"`
	Name                 string             `json:"name"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision"` // "year", "month", "day"
	TotalTracks          int                `json:"total_tracks"`
}

// FullAlbum is the complete album object, including the first page of
// its tracks.
type FullAlbum struct {
	AlbumType            string                `json:"album_type"`
	Artists              []SimplifiedArtist    `json:"artists"`
	Copyrights           []Copyright           `json:"copyrights"`
	ExternalIDs          ExternalIDs           `json:"external_ids"`
	ExternalURLs         ExternalURLs          `json:"external_urls"`
	Genres               []string              `json:"genres"`
	ID                   spotifyid.AlbumID     `json:"id"`
	Images               []Image               `json:"images"`
	Label                string                `json:"label"`
	Name                 string                `json:"name"`
	Popularity           int                   `json:"popularity"`
	ReleaseDate          string                `json:"release_date"`
	ReleaseDatePrecision string                `json:"release_date_precision"`
	TotalTracks          int                   `json:"total_tracks"`
	Tracks               Page[SimplifiedTrack] `json:"tracks"`
}

// AlbumOptions controls market filtering for album lookups.
type AlbumOptions struct {
	Market Market
}

func (options AlbumOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	return query
}

// AlbumTracksOptions controls paging and market filtering for an
// album's track listing.
type AlbumTracksOptions struct {
	Market Market
	Limit  int // results per page (max 50, default 20)
	Offset int
}

func (options AlbumTracksOptions) queryParams() url.Values {
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

// Album retrieves a single album.
func (client *Client) Album(ctx context.Context, id spotifyid.AlbumRef, options AlbumOptions) (*FullAlbum, error) {
	var album FullAlbum
	path := buildPath("/albums/"+id.ID(), options.queryParams())
	if err := client.get(ctx, path, &album); err != nil {
		return nil, fmt.Errorf("getting album %s: %w", id.ID(), err)
	}
	return &album, nil
}

// Albums retrieves up to 20 albums in one request. The result preserves
// the input order; an unknown id yields a nil entry.
func (client *Client) Albums(ctx context.Context, ids []spotifyid.AlbumRef, options AlbumOptions) ([]*FullAlbum, error) {
	query := options.queryParams()
	query.Set("ids", joinIDs(ids))

	var result struct {
		Albums []*FullAlbum `json:"albums"`
	}
	if err := client.get(ctx, buildPath("/albums", query), &result); err != nil {
		return nil, fmt.Errorf("getting %d albums: %w", len(ids), err)
	}
	return result.Albums, nil
}

// AlbumTracks returns a paginated iterator over an album's tracks.
func (client *Client) AlbumTracks(ctx context.Context, id spotifyid.AlbumRef, options AlbumTracksOptions) *Pager[SimplifiedTrack] {
	basePath := "/albums/" + id.ID() + "/tracks"
	return newPager[SimplifiedTrack](client, buildPath(basePath, options.queryParams()))
}
