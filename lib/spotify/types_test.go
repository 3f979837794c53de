// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

func TestPlayableItem_UnmarshalTrack(t *testing.T) {
	var item PlayableItem
	err := json.Unmarshal([]byte(`{"type":"track","id":"4iV5W9uYEdYUVa79Axb7Rh","name":"Buddy Holly","duration_ms":159000}`), &item)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if item.Track == nil {
		t.Fatal("Track = nil")
	}
	if item.Episode != nil {
		t.Error("Episode should be nil for a track")
	}
	if item.Name() != "Buddy Holly" {
		t.Errorf("Name = %q", item.Name())
	}

	uri, ok := item.URI()
	if !ok {
		t.Fatal("URI: not ok")
	}
	if uri.String() != "spotify:track:4iV5W9uYEdYUVa79Axb7Rh" {
		t.Errorf("URI = %q", uri)
	}
}

func TestPlayableItem_UnmarshalEpisode(t *testing.T) {
	var item PlayableItem
	err := json.Unmarshal([]byte(`{"type":"episode","id":"512ojhOuo1ktJprKbVcKyQ","name":"Focus time"}`), &item)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if item.Episode == nil {
		t.Fatal("Episode = nil")
	}
	uri, ok := item.URI()
	if !ok {
		t.Fatal("URI: not ok")
	}
	if uri.String() != "spotify:episode:512ojhOuo1ktJprKbVcKyQ" {
		t.Errorf("URI = %q", uri)
	}
}

func TestPlayableItem_UnmarshalUnrecognized(t *testing.T) {
	var item PlayableItem
	err := json.Unmarshal([]byte(`{"type":"audiobook","id":"x"}`), &item)
	if err == nil {
		t.Fatal("expected error for unrecognized type")
	}
	if !strings.Contains(err.Error(), "audiobook") {
		t.Errorf("error should name the type, got: %v", err)
	}
}

func TestPlayableItem_LocalTrackHasNoRef(t *testing.T) {
	// Local tracks carry "id": null; the decoded identifier stays zero
	// and the item yields no reference or URI.
	var item PlayableItem
	err := json.Unmarshal([]byte(`{"type":"track","id":null,"name":"Home Recording","is_local":true}`), &item)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if item.Track == nil || !item.Track.IsLocal {
		t.Fatalf("Track = %+v", item.Track)
	}
	if _, ok := item.Ref(); ok {
		t.Error("Ref should not be ok for a local track")
	}
	if _, ok := item.URI(); ok {
		t.Error("URI should not be ok for a local track")
	}
}

func TestPlayableItem_WidenedRef(t *testing.T) {
	var item PlayableItem
	err := json.Unmarshal([]byte(`{"type":"episode","id":"512ojhOuo1ktJprKbVcKyQ","name":"Focus time"}`), &item)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	ref, ok := item.Ref()
	if !ok {
		t.Fatal("Ref: not ok")
	}
	if ref.ID() != "512ojhOuo1ktJprKbVcKyQ" {
		t.Errorf("id = %q", ref.ID())
	}
	// The widened reference has discarded the concrete kind; its URI
	// renders the wildcard tag. Wire URIs come from URI() instead.
	if ref.URI() != "spotify:unknown:512ojhOuo1ktJprKbVcKyQ" {
		t.Errorf("widened URI = %q", ref.URI())
	}
}

func TestPlayableURI(t *testing.T) {
	track := NewPlayableURI(spotifyid.MustParseTrackID("4iV5W9uYEdYUVa79Axb7Rh").Ref)
	if track.String() != "spotify:track:4iV5W9uYEdYUVa79Axb7Rh" {
		t.Errorf("track URI = %q", track)
	}
	if track.IsZero() {
		t.Error("constructed URI should not be zero")
	}

	episode := NewPlayableURI(spotifyid.MustParseEpisodeID("512ojhOuo1ktJprKbVcKyQ").Ref)
	if episode.String() != "spotify:episode:512ojhOuo1ktJprKbVcKyQ" {
		t.Errorf("episode URI = %q", episode)
	}

	if !(PlayableURI{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
}

func TestContextURI(t *testing.T) {
	tests := []struct {
		uri  ContextURI
		want string
	}{
		{NewContextURI(spotifyid.MustParseArtistID("0OdUWJ0sBjDrqHygGUXeCF").Ref), "spotify:artist:0OdUWJ0sBjDrqHygGUXeCF"},
		{NewContextURI(spotifyid.MustParseAlbumID("0sNOF9WDwhWunNAHPD3Baj").Ref), "spotify:album:0sNOF9WDwhWunNAHPD3Baj"},
		{NewContextURI(spotifyid.MustParsePlaylistID("37i9dQZF1DZ06evO45P0Eo").Ref), "spotify:playlist:37i9dQZF1DZ06evO45P0Eo"},
		{NewContextURI(spotifyid.MustParseShowID("38bS44xjbVVZ3No3ByF1dJ").Ref), "spotify:show:38bS44xjbVVZ3No3ByF1dJ"},
	}
	for _, test := range tests {
		if got := test.uri.String(); got != test.want {
			t.Errorf("URI = %q, want %q", got, test.want)
		}
	}
}
