// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid_test

import (
	"encoding/json"
	"testing"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

func TestAccessors(t *testing.T) {
	ref, err := spotifyid.ParseTrackRef(testURI)
	if err != nil {
		t.Fatalf("ParseTrackRef: %v", err)
	}
	if got := ref.ID(); got != testID {
		t.Errorf("ID() = %q, want %q", got, testID)
	}
	if got := ref.Kind(); got != spotifyid.KindTrack {
		t.Errorf("Kind() = %v, want %v", got, spotifyid.KindTrack)
	}
	if got := ref.URI(); got != testURI {
		t.Errorf("URI() = %q, want %q", got, testURI)
	}
	want := "https://open.spotify.com/track/" + testID
	if got := ref.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
	if got := ref.String(); got != testURI {
		t.Errorf("String() = %q, want %q", got, testURI)
	}
	if ref.IsZero() {
		t.Error("IsZero() = true for valid ref")
	}
}

func TestZeroValues(t *testing.T) {
	var ref spotifyid.TrackRef
	if !ref.IsZero() {
		t.Error("zero TrackRef: IsZero() = false")
	}
	var id spotifyid.TrackID
	if !id.IsZero() {
		t.Error("zero TrackID: IsZero() = false")
	}
	if ref.ID() != "" {
		t.Errorf("zero ref ID() = %q, want empty", ref.ID())
	}
}

func TestCloneDetaches(t *testing.T) {
	// Parse out of a larger buffer, as a decoder would.
	buffer := []byte("spotify:album:" + testID)
	ref, err := spotifyid.ParseAlbumRef(string(buffer))
	if err != nil {
		t.Fatalf("ParseAlbumRef: %v", err)
	}

	owned := ref.Clone()
	if owned.ID() != ref.ID() {
		t.Fatalf("Clone changed the id: %q -> %q", ref.ID(), owned.ID())
	}
	if owned.URI() != ref.URI() {
		t.Errorf("Clone changed the URI: %q -> %q", ref.URI(), owned.URI())
	}

	// The owned form's view compares equal to the original view.
	if owned.Ref != ref {
		t.Errorf("owned view %v != source view %v", owned.Ref, ref)
	}
}

func TestOwnedParseMatchesViewParse(t *testing.T) {
	id, err := spotifyid.ParsePlaylistID(testURIFor("playlist"))
	if err != nil {
		t.Fatalf("ParsePlaylistID: %v", err)
	}
	ref, err := spotifyid.ParsePlaylistRef(testURIFor("playlist"))
	if err != nil {
		t.Fatalf("ParsePlaylistRef: %v", err)
	}
	if id.Ref != ref {
		t.Errorf("owned parse %v != view parse %v", id.Ref, ref)
	}
}

func testURIFor(kind string) string {
	return "spotify:" + kind + ":" + testID
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseTrackID on invalid input did not panic")
		}
	}()
	spotifyid.MustParseTrackID("not a valid id")
}

func TestMarshalText(t *testing.T) {
	ref := spotifyid.MustParseTrackID(testURI)
	raw, err := json.Marshal(ref)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Wire form is the bare id, not the URI.
	if string(raw) != `"`+testID+`"` {
		t.Errorf("Marshal = %s, want %q", raw, testID)
	}
}

func TestUnmarshalText(t *testing.T) {
	var id spotifyid.TrackID
	if err := json.Unmarshal([]byte(`"`+testID+`"`), &id); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if id.ID() != testID {
		t.Errorf("ID() = %q, want %q", id.ID(), testID)
	}
	if id.URI() != testURI {
		t.Errorf("URI() = %q, want %q", id.URI(), testURI)
	}

	// Unmarshaling validates: garbage is rejected, and the previous
	// value survives.
	if err := json.Unmarshal([]byte(`"not an id"`), &id); err == nil {
		t.Error("Unmarshal of invalid id succeeded")
	}
	if id.ID() != testID {
		t.Errorf("failed unmarshal clobbered the value: %q", id.ID())
	}
}

func TestJSONRoundTripInStruct(t *testing.T) {
	type favorite struct {
		Name  string            `json:"name"`
		Track spotifyid.TrackID `json:"track"`
	}
	original := favorite{Name: "test", Track: spotifyid.MustParseTrackID(testID)}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded favorite
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip: got %+v, want %+v", decoded, original)
	}
}

func TestIdentifiersAsMapKeys(t *testing.T) {
	a := spotifyid.MustParseTrackID(testID)
	b := spotifyid.MustParseTrackID(testURI)

	counts := map[spotifyid.TrackID]int{}
	counts[a]++
	counts[b]++
	if len(counts) != 1 {
		t.Errorf("equal ids landed in %d map slots", len(counts))
	}
	if counts[a] != 2 {
		t.Errorf("count = %d, want 2", counts[a])
	}
}

func TestDistinctIDsDiffer(t *testing.T) {
	a, err := spotifyid.ParseTrackRef("aaaaaaaaaaaaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("ParseTrackRef: %v", err)
	}
	b, err := spotifyid.ParseTrackRef("bbbbbbbbbbbbbbbbbbbbbb")
	if err != nil {
		t.Fatalf("ParseTrackRef: %v", err)
	}
	if a == b {
		t.Error("distinct ids compare equal")
	}
}
