// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// RepeatState is the player repeat mode.
type RepeatState string

const (
	RepeatOff     RepeatState = "off"
	RepeatTrack   RepeatState = "track"
	RepeatContext RepeatState = "context"
)

// Device is a playback device registered with Spotify Connect. Device
// IDs are opaque hardware identifiers, not catalog resource IDs.
type Device struct {
	ID               string `json:"id"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	VolumePercent    *int   `json:"volume_percent"`
}

// PlaybackContext describes the context playback started from (an
// album, artist, playlist, or show).
type PlaybackContext struct {
	Type         string       `json:"type"`
	Href         string       `json:"href"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Ref parses the context URI into a typed reference.
func (playbackContext *PlaybackContext) Ref() (spotifyid.PlayContextRef, error) {
	return spotifyid.ParsePlayContextRef(playbackContext.URI)
}

// CurrentlyPlaying is the item the user is listening to right now.
type CurrentlyPlaying struct {
	Context *PlaybackContext `json:"context"`

	// Timestamp is the server-side unix timestamp in milliseconds when
	// the playback state was captured.
	Timestamp int64 `json:"timestamp"`

	ProgressMS *int          `json:"progress_ms"`
	IsPlaying  bool          `json:"is_playing"`
	Item       *PlayableItem `json:"item"`

	// CurrentlyPlayingType is "track", "episode", "ad", or "unknown".
	CurrentlyPlayingType string `json:"currently_playing_type"`
}

// Time returns the capture timestamp as a time.Time.
func (playing *CurrentlyPlaying) Time() time.Time {
	return time.UnixMilli(playing.Timestamp)
}

// Progress returns playback progress as a duration, or zero when the
// API reported none.
func (playing *CurrentlyPlaying) Progress() time.Duration {
	if playing.ProgressMS == nil {
		return 0
	}
	return time.Duration(*playing.ProgressMS) * time.Millisecond
}

// CurrentPlayback is the full playback state: the currently playing
// item plus the active device and player modes.
type CurrentPlayback struct {
	CurrentlyPlaying

	Device       Device      `json:"device"`
	RepeatState  RepeatState `json:"repeat_state"`
	ShuffleState bool        `json:"shuffle_state"`
}

// PlayHistory is one entry of the user's listening history.
type PlayHistory struct {
	Track    FullTrack        `json:"track"`
	PlayedAt time.Time        `json:"played_at"`
	Context  *PlaybackContext `json:"context"`
}

// PlayOptions controls what and where Play starts playback.
//
// Context and URIs are mutually exclusive: resume from a context
// (album, artist, playlist, show) or play an explicit list of tracks
// and episodes. Leave both zero to resume the current playback.
type PlayOptions struct {
	// DeviceID targets a specific device. Empty targets the user's
	// currently active device.
	DeviceID string

	// Context starts playback from a play context.
	Context ContextURI

	// URIs plays this exact list of items.
	URIs []PlayableURI

	// Position starts playback at this zero-based position within the
	// context. Only meaningful with Context.
	Position *int

	// PositionMS seeks to this offset within the first item.
	PositionMS int
}

// playRequest is the wire body for the play endpoint.
type playRequest struct {
	ContextURI string      `json:"context_uri,omitempty"`
	URIs       []string    `json:"uris,omitempty"`
	Offset     *playOffset `json:"offset,omitempty"`
	PositionMS int         `json:"position_ms,omitempty"`
}

type playOffset struct {
	Position int `json:"position"`
}

// RecentlyPlayedOptions filters the listening history. After and
// Before are unix timestamps in milliseconds; at most one may be set.
type RecentlyPlayedOptions struct {
	Limit  int // max 50, default 20
	After  int64
	Before int64
}

func (options RecentlyPlayedOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}
	if options.After > 0 {
		query.Set("after", strconv.FormatInt(options.After, 10))
	}
	if options.Before > 0 {
		query.Set("before", strconv.FormatInt(options.Before, 10))
	}
	return query
}

// Devices lists the user's available playback devices. Requires the
// user-read-playback-state scope.
func (client *Client) Devices(ctx context.Context) ([]Device, error) {
	var result struct {
		Devices []Device `json:"devices"`
	}
	if err := client.get(ctx, "/me/player/devices", &result); err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	return result.Devices, nil
}

// CurrentPlayback returns the full playback state, or nil when nothing
// is playing and no device is active. Requires the
// user-read-playback-state scope.
func (client *Client) CurrentPlayback(ctx context.Context) (*CurrentPlayback, error) {
	body, err := client.do(ctx, http.MethodGet, "/me/player", nil)
	if err != nil {
		return nil, fmt.Errorf("getting playback state: %w", err)
	}
	// 204 with an empty body means no active playback.
	if len(body) == 0 {
		return nil, nil
	}

	var playback CurrentPlayback
	if err := decodeBody(body, &playback); err != nil {
		return nil, fmt.Errorf("getting playback state: %w", err)
	}
	return &playback, nil
}

// CurrentlyPlaying returns the item being played right now, or nil when
// nothing is playing. Requires the user-read-currently-playing scope.
func (client *Client) CurrentlyPlaying(ctx context.Context) (*CurrentlyPlaying, error) {
	body, err := client.do(ctx, http.MethodGet, "/me/player/currently-playing", nil)
	if err != nil {
		return nil, fmt.Errorf("getting currently playing: %w", err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var playing CurrentlyPlaying
	if err := decodeBody(body, &playing); err != nil {
		return nil, fmt.Errorf("getting currently playing: %w", err)
	}
	return &playing, nil
}

// Play starts or resumes playback. Requires the
// user-modify-playback-state scope.
func (client *Client) Play(ctx context.Context, options PlayOptions) error {
	if !options.Context.IsZero() && len(options.URIs) > 0 {
		return fmt.Errorf("starting playback: context and URIs are mutually exclusive")
	}

	var request *playRequest
	if !options.Context.IsZero() || len(options.URIs) > 0 || options.PositionMS > 0 {
		request = &playRequest{
			ContextURI: options.Context.String(),
			URIs:       uriStrings(options.URIs),
			PositionMS: options.PositionMS,
		}
		if options.Position != nil {
			request.Offset = &playOffset{Position: *options.Position}
		}
	}

	path := buildPath("/me/player/play", deviceParams(options.DeviceID))
	var requestBody any
	if request != nil {
		requestBody = request
	}
	if err := client.put(ctx, path, requestBody, nil); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}
	return nil
}

// Pause pauses playback. Requires the user-modify-playback-state scope.
func (client *Client) Pause(ctx context.Context, deviceID string) error {
	path := buildPath("/me/player/pause", deviceParams(deviceID))
	if err := client.put(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("pausing playback: %w", err)
	}
	return nil
}

// SkipNext skips to the next item in the queue. Requires the
// user-modify-playback-state scope.
func (client *Client) SkipNext(ctx context.Context, deviceID string) error {
	path := buildPath("/me/player/next", deviceParams(deviceID))
	if err := client.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("skipping to next: %w", err)
	}
	return nil
}

// SkipPrevious skips to the previous item. Requires the
// user-modify-playback-state scope.
func (client *Client) SkipPrevious(ctx context.Context, deviceID string) error {
	path := buildPath("/me/player/previous", deviceParams(deviceID))
	if err := client.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("skipping to previous: %w", err)
	}
	return nil
}

// Queue adds an item to the end of the playback queue. Requires the
// user-modify-playback-state scope.
func (client *Client) Queue(ctx context.Context, item PlayableURI, deviceID string) error {
	if item.IsZero() {
		return fmt.Errorf("queueing: no item")
	}

	query := deviceParams(deviceID)
	query.Set("uri", item.String())
	if err := client.post(ctx, buildPath("/me/player/queue", query), nil, nil); err != nil {
		return fmt.Errorf("queueing %s: %w", item, err)
	}
	return nil
}

// RecentlyPlayed returns the user's listening history, most recent
// first. Requires the user-read-recently-played scope.
func (client *Client) RecentlyPlayed(ctx context.Context, options RecentlyPlayedOptions) (*CursorPage[PlayHistory], error) {
	if options.After > 0 && options.Before > 0 {
		return nil, fmt.Errorf("getting recently played: after and before are mutually exclusive")
	}

	var page CursorPage[PlayHistory]
	path := buildPath("/me/player/recently-played", options.queryParams())
	if err := client.get(ctx, path, &page); err != nil {
		return nil, fmt.Errorf("getting recently played: %w", err)
	}
	return &page, nil
}

// deviceParams builds the optional device_id query parameter shared by
// the player endpoints.
func deviceParams(deviceID string) url.Values {
	query := url.Values{}
	if deviceID != "" {
		query.Set("device_id", deviceID)
	}
	return query
}
