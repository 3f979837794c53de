// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// SimplifiedPlaylist is the playlist object in listings and search
// results.
type SimplifiedPlaylist struct {
	Collaborative bool                 `json:"collaborative"`
	Description   string               `json:"description"`
	ExternalURLs  ExternalURLs         `json:"external_urls"`
	ID            spotifyid.PlaylistID `json:"id"`
	Images        []Image              `json:"images"`
	Name          string               `json:"name"`
	Owner         PublicUser           `json:"owner"`
	Public        *bool                `json:"public"`
	SnapshotID    string               `json:"snapshot_id"`
	Tracks        PlaylistTracksRef    `json:"tracks"`
}

// PlaylistTracksRef is the track-count stub on a simplified playlist.
type PlaylistTracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// FullPlaylist is the complete playlist object, including the first
// page of its items.
type FullPlaylist struct {
	Collaborative bool                 `json:"collaborative"`
	Description   string               `json:"description"`
	ExternalURLs  ExternalURLs         `json:"external_urls"`
	Followers     Followers            `json:"followers"`
	ID            spotifyid.PlaylistID `json:"id"`
	Images        []Image              `json:"images"`
	Name          string               `json:"name"`
	Owner         PublicUser           `json:"owner"`
	Public        *bool                `json:"public"`
	SnapshotID    string               `json:"snapshot_id"`
	Tracks        Page[PlaylistItem]   `json:"tracks"`
}

// PlaylistItem is one entry in a playlist. Track is nil for entries
// whose content has become unavailable.
type PlaylistItem struct {
	AddedAt time.Time     `json:"added_at"`
	AddedBy PublicUser    `json:"added_by"`
	IsLocal bool          `json:"is_local"`
	Track   *PlayableItem `json:"track"`
}

// PlaylistOptions controls market filtering for playlist lookups.
type PlaylistOptions struct {
	Market Market
}

func (options PlaylistOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	// Playlist items may be episodes; without this the API degrades
	// them to a track-shaped stub.
	query.Set("additional_types", "track,episode")
	return query
}

// PlaylistItemsOptions controls paging and market filtering for a
// playlist's items.
type PlaylistItemsOptions struct {
	Market Market
	Limit  int // results per page (max 50, default 20)
	Offset int
}

func (options PlaylistItemsOptions) queryParams() url.Values {
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
	query.Set("additional_types", "track,episode")
	return query
}

// CreatePlaylistRequest contains the fields for creating a playlist.
type CreatePlaylistRequest struct {
	Name          string `json:"name"`
	Public        *bool  `json:"public,omitempty"`
	Collaborative bool   `json:"collaborative,omitempty"`
	Description   string `json:"description,omitempty"`
}

// Playlist retrieves a single playlist.
func (client *Client) Playlist(ctx context.Context, id spotifyid.PlaylistRef, options PlaylistOptions) (*FullPlaylist, error) {
	var playlist FullPlaylist
	path := buildPath("/playlists/"+id.ID(), options.queryParams())
	if err := client.get(ctx, path, &playlist); err != nil {
		return nil, fmt.Errorf("getting playlist %s: %w", id.ID(), err)
	}
	return &playlist, nil
}

// PlaylistItems returns a paginated iterator over a playlist's items.
func (client *Client) PlaylistItems(ctx context.Context, id spotifyid.PlaylistRef, options PlaylistItemsOptions) *Pager[PlaylistItem] {
	basePath := "/playlists/" + id.ID() + "/tracks"
	return newPager[PlaylistItem](client, buildPath(basePath, options.queryParams()))
}

// CreatePlaylist creates a playlist owned by the given user. Requires
// the playlist-modify-public scope (or -private for private playlists).
func (client *Client) CreatePlaylist(ctx context.Context, user spotifyid.UserRef, request CreatePlaylistRequest) (*FullPlaylist, error) {
	var playlist FullPlaylist
	path := "/users/" + user.ID() + "/playlists"
	if err := client.post(ctx, path, request, &playlist); err != nil {
		return nil, fmt.Errorf("creating playlist for user %s: %w", user.ID(), err)
	}
	return &playlist, nil
}

// AddPlaylistItems appends tracks and episodes to a playlist. Position
// nil appends at the end. Returns the new snapshot id.
func (client *Client) AddPlaylistItems(ctx context.Context, id spotifyid.PlaylistRef, items []PlayableURI, position *int) (string, error) {
	request := struct {
		URIs     []string `json:"uris"`
		Position *int     `json:"position,omitempty"`
	}{
		URIs:     uriStrings(items),
		Position: position,
	}

	var result struct {
		SnapshotID string `json:"snapshot_id"`
	}
	path := "/playlists/" + id.ID() + "/tracks"
	if err := client.post(ctx, path, request, &result); err != nil {
		return "", fmt.Errorf("adding %d items to playlist %s: %w", len(items), id.ID(), err)
	}
	return result.SnapshotID, nil
}

// RemovePlaylistItems removes all occurrences of the given tracks and
// episodes from a playlist. Returns the new snapshot id.
func (client *Client) RemovePlaylistItems(ctx context.Context, id spotifyid.PlaylistRef, items []PlayableURI) (string, error) {
	type uriObject struct {
		URI string `json:"uri"`
	}
	request := struct {
		Tracks []uriObject `json:"tracks"`
	}{}
	for _, item := range items {
		request.Tracks = append(request.Tracks, uriObject{URI: item.String()})
	}

	var result struct {
		SnapshotID string `json:"snapshot_id"`
	}
	path := "/playlists/" + id.ID() + "/tracks"
	if err := client.del(ctx, path, request, &result); err != nil {
		return "", fmt.Errorf("removing %d items from playlist %s: %w", len(items), id.ID(), err)
	}
	return result.SnapshotID, nil
}

// ReorderPlaylistItems moves a run of items within a playlist:
// rangeLength items starting at rangeStart are inserted before
// insertBefore. Returns the new snapshot id.
func (client *Client) ReorderPlaylistItems(ctx context.Context, id spotifyid.PlaylistRef, rangeStart, rangeLength, insertBefore int) (string, error) {
	request := struct {
		RangeStart   int `json:"range_start"`
		RangeLength  int `json:"range_length"`
		InsertBefore int `json:"insert_before"`
	}{
		RangeStart:   rangeStart,
		RangeLength:  rangeLength,
		InsertBefore: insertBefore,
	}

	var result struct {
		SnapshotID string `json:"snapshot_id"`
	}
	path := "/playlists/" + id.ID() + "/tracks"
	if err := client.put(ctx, path, request, &result); err != nil {
		return "", fmt.Errorf("reordering playlist %s: %w", id.ID(), err)
	}
	return result.SnapshotID, nil
}

// uriStrings renders playable URIs for a request body.
func uriStrings(items []PlayableURI) []string {
	uris := make([]string, len(items))
	for i, item := range items {
		uris[i] = item.String()
	}
	return uris
}
