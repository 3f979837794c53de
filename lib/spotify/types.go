// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"encoding/json"
	"fmt"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// ExternalURLs holds known external links for a resource. In practice
// only the canonical open.spotify.com link is populated.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ExternalIDs holds known external identifiers for a track or album.
type ExternalIDs struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// Image is a cover or profile image in one resolution. Dimensions may
// be zero when the API does not report them.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers is the follower count envelope.
type Followers struct {
	Total int `json:"total"`
}

// Copyright is a copyright statement on an album or show. Type is "C"
// for the work or "P" for the sound recording.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Restrictions explains why content is unavailable ("market",
// "product", or "explicit").
type Restrictions struct {
	Reason string `json:"reason"`
}

// ResumePoint is the user's position in an episode.
type ResumePoint struct {
	FullyPlayed      bool `json:"fully_played"`
	ResumePositionMS int  `json:"resume_position_ms"`
}

// PlayableItem is a track or an episode, the two things that can occur
// in playlists, queues, and playback state. Exactly one of the fields
// is set, discriminated by the wire object's "type".
type PlayableItem struct {
	Track   *FullTrack
	Episode *FullEpisode
}

func (item *PlayableItem) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case "track":
		item.Track = &FullTrack{}
		return json.Unmarshal(data, item.Track)
	case "episode":
		item.Episode = &FullEpisode{}
		return json.Unmarshal(data, item.Episode)
	default:
		return fmt.Errorf("spotify: unrecognized playable item type %q", probe.Type)
	}
}

// Name returns the track or episode title.
func (item PlayableItem) Name() string {
	switch {
	case item.Track != nil:
		return item.Track.Name
	case item.Episode != nil:
		return item.Episode.Name
	default:
		return ""
	}
}

// Ref returns the item's identifier widened to the playable group kind.
// The second result is false for an empty item or a local track, which
// has no catalog identifier.
func (item PlayableItem) Ref() (spotifyid.PlayableRef, bool) {
	switch {
	case item.Track != nil && !item.Track.ID.IsZero():
		return spotifyid.AsPlayable(item.Track.ID.Ref), true
	case item.Episode != nil && !item.Episode.ID.IsZero():
		return spotifyid.AsPlayable(item.Episode.ID.Ref), true
	default:
		return spotifyid.PlayableRef{}, false
	}
}

// URI returns the item's concrete playable URI. The second result is
// false for an empty item or a local track.
func (item PlayableItem) URI() (PlayableURI, bool) {
	switch {
	case item.Track != nil && !item.Track.ID.IsZero():
		return NewPlayableURI(item.Track.ID.Ref), true
	case item.Episode != nil && !item.Episode.ID.IsZero():
		return NewPlayableURI(item.Episode.ID.Ref), true
	default:
		return PlayableURI{}, false
	}
}

// PlayableURI identifies a track or episode by its full concrete URI,
// for endpoints that accept either kind in a request body or query.
// Widened group identifiers render the wildcard kind name and so cannot
// produce a wire URI; the constructor's constraint captures the
// concrete kind instead. The zero value is invalid.
type PlayableURI struct {
	uri string
}

// NewPlayableURI builds the wire URI for a track or episode.
func NewPlayableURI[R spotifyid.PlayableResource](id spotifyid.Ref[R]) PlayableURI {
	return PlayableURI{uri: id.URI()}
}

func (playable PlayableURI) String() string {
	return playable.uri
}

// IsZero reports whether the value was constructed.
func (playable PlayableURI) IsZero() bool {
	return playable.uri == ""
}

// ContextURI identifies a playback context (artist, album, playlist,
// or show) by its full concrete URI. The zero value is invalid.
type ContextURI struct {
	uri string
}

// NewContextURI builds the wire URI for a playback context.
func NewContextURI[R spotifyid.PlayContextResource](id spotifyid.Ref[R]) ContextURI {
	return ContextURI{uri: id.URI()}
}

func (context ContextURI) String() string {
	return context.uri
}

// IsZero reports whether the value was constructed.
func (context ContextURI) IsZero() bool {
	return context.uri == ""
}
