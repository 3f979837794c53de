// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package get

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

func renderTrack(track *spotify.FullTrack) {
	fmt.Printf("Track:      %s\n", track.Name)
	fmt.Printf("Artists:    %s\n", track.ArtistNames())
	fmt.Printf("Album:      %s (%s)\n", track.Album.Name, track.Album.ReleaseDate)
	fmt.Printf("Duration:   %s\n", cli.FormatDuration(track.Duration()))
	fmt.Printf("Popularity: %d\n", track.Popularity)
	if track.Explicit {
		fmt.Println("Explicit:   yes")
	}
	if track.ExternalIDs.ISRC != "" {
		fmt.Printf("ISRC:       %s\n", track.ExternalIDs.ISRC)
	}
	fmt.Printf("URL:        %s\n", track.ExternalURLs.Spotify)
}

func renderAlbum(album *spotify.FullAlbum) {
	fmt.Printf("Album:      %s\n", album.Name)
	fmt.Printf("Artists:    %s\n", cli.JoinArtists(album.Artists))
	fmt.Printf("Released:   %s\n", album.ReleaseDate)
	if album.Label != "" {
		fmt.Printf("Label:      %s\n", album.Label)
	}
	fmt.Printf("Tracks:     %d\n", album.TotalTracks)
	fmt.Printf("Popularity: %d\n", album.Popularity)
	fmt.Printf("URL:        %s\n", album.ExternalURLs.Spotify)

	if len(album.Tracks.Items) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTable(
			[]string{"#", "TITLE", "LENGTH"},
			albumTrackRows(album.Tracks.Items),
			[]cli.Alignment{cli.AlignRight, cli.AlignLeft, cli.AlignRight},
		))
	}
}

func albumTrackRows(tracks []spotify.SimplifiedTrack) [][]string {
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			strconv.Itoa(track.TrackNumber),
			track.Name,
			cli.FormatDuration(track.Duration()),
		})
	}
	return rows
}

func renderArtist(artist *spotify.FullArtist, topTracks []spotify.FullTrack) {
	fmt.Printf("Artist:     %s\n", artist.Name)
	if len(artist.Genres) > 0 {
		fmt.Printf("Genres:     %s\n", strings.Join(artist.Genres, ", "))
	}
	fmt.Printf("Followers:  %s\n", humanize.Comma(int64(artist.Followers.Total)))
	fmt.Printf("Popularity: %d\n", artist.Popularity)
	fmt.Printf("URL:        %s\n", artist.ExternalURLs.Spotify)

	if len(topTracks) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTable(
			[]string{"TOP TRACKS", "ALBUM", "LENGTH"},
			topTrackRows(topTracks),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignRight},
		))
	}
}

func topTrackRows(tracks []spotify.FullTrack) [][]string {
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			track.Name,
			track.Album.Name,
			cli.FormatDuration(track.Duration()),
		})
	}
	return rows
}

func renderPlaylist(playlist *spotify.FullPlaylist) {
	fmt.Printf("Playlist:   %s\n", playlist.Name)
	fmt.Printf("Owner:      %s\n", playlist.Owner.DisplayName)
	if playlist.Description != "" {
		fmt.Printf("About:      %s\n", playlist.Description)
	}
	fmt.Printf("Tracks:     %d\n", playlist.Tracks.Total)
	fmt.Printf("Followers:  %s\n", humanize.Comma(int64(playlist.Followers.Total)))
	fmt.Printf("URL:        %s\n", playlist.ExternalURLs.Spotify)

	if len(playlist.Tracks.Items) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTable(
			[]string{"TITLE", "ARTISTS", "ADDED"},
			playlistItemRows(playlist.Tracks.Items),
			nil,
		))
		if playlist.Tracks.Next != "" {
			fmt.Printf("... and %d more\n", playlist.Tracks.Total-len(playlist.Tracks.Items))
		}
	}
}

func playlistItemRows(items []spotify.PlaylistItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		title, artists := "(unavailable)", ""
		switch {
		case item.Track == nil:
		case item.Track.Track != nil:
			title = item.Track.Track.Name
			artists = item.Track.Track.ArtistNames()
		case item.Track.Episode != nil:
			title = item.Track.Episode.Name
			artists = item.Track.Episode.Show.Publisher
		}
		rows = append(rows, []string{title, artists, humanize.Time(item.AddedAt)})
	}
	return rows
}

func renderShow(show *spotify.FullShow) {
	fmt.Printf("Show:       %s\n", show.Name)
	fmt.Printf("Publisher:  %s\n", show.Publisher)
	fmt.Printf("Episodes:   %d\n", show.TotalEpisodes)
	fmt.Printf("URL:        %s\n", show.ExternalURLs.Spotify)

	if len(show.Episodes.Items) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTable(
			[]string{"EPISODE", "RELEASED", "LENGTH"},
			episodeRows(show.Episodes.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignRight},
		))
	}
}

func episodeRows(episodes []spotify.SimplifiedEpisode) [][]string {
	rows := make([][]string, 0, len(episodes))
	for _, episode := range episodes {
		rows = append(rows, []string{
			episode.Name,
			episode.ReleaseDate,
			cli.FormatDuration(episode.Duration()),
		})
	}
	return rows
}

func renderEpisode(episode *spotify.FullEpisode) {
	fmt.Printf("Episode:    %s\n", episode.Name)
	fmt.Printf("Show:       %s (%s)\n", episode.Show.Name, episode.Show.Publisher)
	fmt.Printf("Released:   %s\n", episode.ReleaseDate)
	fmt.Printf("Duration:   %s\n", cli.FormatDuration(episode.Duration()))
	fmt.Printf("URL:        %s\n", episode.ExternalURLs.Spotify)
}

func renderUser(user *spotify.PublicUser) {
	fmt.Printf("User:       %s\n", user.DisplayName)
	fmt.Printf("ID:         %s\n", user.ID.ID())
	fmt.Printf("Followers:  %s\n", humanize.Comma(int64(user.Followers.Total)))
	fmt.Printf("URL:        %s\n", user.ExternalURLs.Spotify)
}
