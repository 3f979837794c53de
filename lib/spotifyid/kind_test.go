// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid_test

import (
	"encoding/json"
	"testing"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

func TestParseKind(t *testing.T) {
	valid := map[string]spotifyid.Kind{
		"artist":   spotifyid.KindArtist,
		"album":    spotifyid.KindAlbum,
		"track":    spotifyid.KindTrack,
		"playlist": spotifyid.KindPlaylist,
		"user":     spotifyid.KindUser,
		"show":     spotifyid.KindShow,
		"episode":  spotifyid.KindEpisode,
	}
	for name, want := range valid {
		kind, err := spotifyid.ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", name, err)
			continue
		}
		if kind != want {
			t.Errorf("ParseKind(%q) = %v, want %v", name, kind, want)
		}
		if kind.String() != name {
			t.Errorf("String() = %q, want %q", kind.String(), name)
		}
	}

	invalid := []string{
		"", "unknown", "Track", "TRACK", "tracks", " track", "track ", "podcast",
	}
	for _, name := range invalid {
		if _, err := spotifyid.ParseKind(name); err == nil {
			t.Errorf("ParseKind(%q) succeeded, want error", name)
		}
	}
}

func TestKindZeroValue(t *testing.T) {
	var kind spotifyid.Kind
	if kind != spotifyid.KindUnknown {
		t.Errorf("zero Kind = %v, want KindUnknown", kind)
	}
	if kind.String() != "unknown" {
		t.Errorf("String() = %q, want %q", kind.String(), "unknown")
	}
}

func TestKindJSONRoundTrip(t *testing.T) {
	type typed struct {
		Type spotifyid.Kind `json:"type"`
	}

	raw, err := json.Marshal(typed{Type: spotifyid.KindEpisode})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `{"type":"episode"}` {
		t.Errorf("Marshal = %s", raw)
	}

	var decoded typed
	if err := json.Unmarshal([]byte(`{"type":"show"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Type != spotifyid.KindShow {
		t.Errorf("Type = %v, want KindShow", decoded.Type)
	}

	// The wildcard name is renderable but not parseable: it never
	// appears in API payloads.
	if err := json.Unmarshal([]byte(`{"type":"unknown"}`), &decoded); err == nil {
		t.Error("Unmarshal of wildcard kind succeeded")
	}
}
