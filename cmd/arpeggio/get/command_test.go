// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package get

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunGetRequiresOneArgument(t *testing.T) {
	err := runGet(context.Background(), nil, testLogger())
	if err == nil {
		t.Fatal("expected error for missing argument")
	}

	err = runGet(context.Background(), []string{"a", "b"}, testLogger())
	if err == nil {
		t.Fatal("expected error for two arguments")
	}
}

func TestRunGetRejectsBareID(t *testing.T) {
	err := runGet(context.Background(), []string{"6rqhFgbbKwnb9MLmUQDhG6"}, testLogger())
	if err == nil {
		t.Fatal("expected error for bare ID")
	}
	if !strings.Contains(err.Error(), "bare ID") {
		t.Errorf("error = %q, want bare ID explanation", err)
	}
}

func TestRunGetRejectsMalformedInput(t *testing.T) {
	err := runGet(context.Background(), []string{"spotify:track:no!good"}, testLogger())
	if err == nil {
		t.Fatal("expected error for malformed URI")
	}
}

func TestAlbumTrackRows(t *testing.T) {
	tracks := []spotify.SimplifiedTrack{
		{TrackNumber: 1, Name: "So What", DurationMS: 545000},
		{TrackNumber: 2, Name: "Freddie Freeloader", DurationMS: 589000},
	}

	rows := albumTrackRows(tracks)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "So What" || rows[0][2] != "9:05" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "9:49" {
		t.Errorf("row 1 duration = %q, want 9:49", rows[1][2])
	}
}

func TestPlaylistItemRows(t *testing.T) {
	added := time.Now().Add(-time.Hour)
	items := []spotify.PlaylistItem{
		{
			AddedAt: added,
			Track: &spotify.PlayableItem{Track: &spotify.FullTrack{
				Name:    "Blue in Green",
				Artists: []spotify.SimplifiedArtist{{Name: "Miles Davis"}},
			}},
		},
		{
			AddedAt: added,
			Track: &spotify.PlayableItem{Episode: &spotify.FullEpisode{
				Name: "Episode One",
				Show: spotify.SimplifiedShow{Publisher: "Some Publisher"},
			}},
		},
		{AddedAt: added, Track: nil},
	}

	rows := playlistItemRows(items)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Blue in Green" || rows[0][1] != "Miles Davis" {
		t.Errorf("track row = %v", rows[0])
	}
	if rows[1][0] != "Episode One" || rows[1][1] != "Some Publisher" {
		t.Errorf("episode row = %v", rows[1])
	}
	if rows[2][0] != "(unavailable)" {
		t.Errorf("nil-track row = %v, want unavailable marker", rows[2])
	}
}

func TestEpisodeRows(t *testing.T) {
	episodes := []spotify.SimplifiedEpisode{
		{Name: "Pilot", ReleaseDate: "2024-01-15", DurationMS: 1800000},
	}

	rows := episodeRows(episodes)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0][0] != "Pilot" || rows[0][1] != "2024-01-15" || rows[0][2] != "30:00" {
		t.Errorf("row = %v", rows[0])
	}
}
