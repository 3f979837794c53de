// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// SimplifiedTrack is the track object embedded in album listings.
type SimplifiedTrack struct {
	Artists      []SimplifiedArtist `json:"artists"`
	DiscNumber   int                `json:"disc_number"`
	DurationMS   int                `json:"duration_ms"`
	Explicit     bool               `json:"explicit"`
	ExternalURLs ExternalURLs       `json:"external_urls"`
	ID           spotifyid.TrackID  `json:"id"`
	IsLocal      bool               `json:"is_local"`
	Name         string             `json:"name"`
	PreviewURL   string             `json:"preview_url"`
	TrackNumber  int                `json:"track_number"`
}

// Duration returns the track length.
func (track SimplifiedTrack) Duration() time.Duration {
	return time.Duration(track.DurationMS) * time.Millisecond
}

// FullTrack is the complete track object.
type FullTrack struct {
	Album        SimplifiedAlbum    `json:"album"`
	Artists      []SimplifiedArtist `json:"artists"`
	DiscNumber   int                `json:"disc_number"`
	DurationMS   int                `json:"duration_ms"`
	Explicit     bool               `json:"explicit"`
	ExternalIDs  ExternalIDs        `json:"external_ids"`
	ExternalURLs ExternalURLs       `json:"external_urls"`
	ID           spotifyid.TrackID  `json:"id"`
	IsLocal      bool               `json:"is_local"`
	Name         string             `json:"name"`
	Popularity   int                `json:"popularity"`
	PreviewURL   string             `json:"preview_url"`
	TrackNumber  int                `json:"track_number"`
}

// Duration returns the track length.
func (track FullTrack) Duration() time.Duration {
	return time.Duration(track.DurationMS) * time.Millisecond
}

// ArtistNames returns the track's artist names, comma-joined.
func (track FullTrack) ArtistNames() string {
	names := make([]string, len(track.Artists))
	for i, artist := range track.Artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

// SavedTrack is a track in the user's library with its save timestamp.
type SavedTrack struct {
	AddedAt time.Time `json:"added_at"`
	Track   FullTrack `json:"track"`
}

// TrackOptions controls market filtering for single and batch track
// lookups.
type TrackOptions struct {
	Market Market
}

func (options TrackOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	return query
}

// SavedTracksOptions controls paging and market filtering for the
// user's saved tracks.
type SavedTracksOptions struct {
	Market Market
	Limit  int // results per page (max 50, default 20)
	Offset int
}

func (options SavedTracksOptions) queryParams() url.Values {
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

// Track retrieves a single track.
func (client *Client) Track(ctx context.Context, id spotifyid.TrackRef, options TrackOptions) (*FullTrack, error) {
	var track FullTrack
	path := buildPath("/tracks/"+id.ID(), options.queryParams())
	if err := client.get(ctx, path, &track); err != nil {
		return nil, fmt.Errorf("getting track %s: %w", id.ID(), err)
	}
	return &track, nil
}

// Tracks retrieves up to 50 tracks in one request. The result preserves
// the input order; an unknown id yields a nil entry.
func (client *Client) Tracks(ctx context.Context, ids []spotifyid.TrackRef, options TrackOptions) ([]*FullTrack, error) {
	query := options.queryParams()
	query.Set("ids", joinIDs(ids))

	var result struct {
		Tracks []*FullTrack `json:"tracks"`
	}
	if err := client.get(ctx, buildPath("/tracks", query), &result); err != nil {
		return nil, fmt.Errorf("getting %d tracks: %w", len(ids), err)
	}
	return result.Tracks, nil
}

// SavedTracks returns a paginated iterator over the user's library
// tracks. Requires the user-library-read scope.
func (client *Client) SavedTracks(ctx context.Context, options SavedTracksOptions) *Pager[SavedTrack] {
	return newPager[SavedTrack](client, buildPath("/me/tracks", options.queryParams()))
}

// SaveTracks adds up to 50 tracks to the user's library. Requires the
// user-library-modify scope.
func (client *Client) SaveTracks(ctx context.Context, ids []spotifyid.TrackRef) error {
	query := url.Values{"ids": {joinIDs(ids)}}
	if err := client.put(ctx, buildPath("/me/tracks", query), nil, nil); err != nil {
		return fmt.Errorf("saving %d tracks: %w", len(ids), err)
	}
	return nil
}

// RemoveSavedTracks removes up to 50 tracks from the user's library.
// Requires the user-library-modify scope.
func (client *Client) RemoveSavedTracks(ctx context.Context, ids []spotifyid.TrackRef) error {
	query := url.Values{"ids": {joinIDs(ids)}}
	if err := client.del(ctx, buildPath("/me/tracks", query), nil, nil); err != nil {
		return fmt.Errorf("removing %d saved tracks: %w", len(ids), err)
	}
	return nil
}

// joinIDs builds the comma-separated id list batch endpoints take.
func joinIDs[R spotifyid.Resource](refs []spotifyid.Ref[R]) string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID()
	}
	return strings.Join(ids, ",")
}
