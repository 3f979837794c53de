// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// Row is one selectable entry in the results list. Exactly one of
// Playable and Context is set: tracks and episodes queue and play as
// individual items, everything else starts context playback.
type Row struct {
	Kind     spotifyid.Kind
	Title    string
	Subtitle string
	Playable spotify.PlayableURI
	Context  spotify.ContextURI

	// Detail holds the label/value lines for the detail pane.
	Detail []DetailField
}

// DetailField is one label/value line in the detail pane.
type DetailField struct {
	Label string
	Value string
}

// rowsFromResult builds the row list for one tab from a search result.
// A nil result or an absent list yields no rows.
func rowsFromResult(result *spotify.SearchResult, tab Tab) []Row {
	if result == nil {
		return nil
	}
	switch tab {
	case TabTracks:
		if result.Tracks != nil {
			return trackRows(result.Tracks.Items)
		}
	case TabArtists:
		if result.Artists != nil {
			return artistRows(result.Artists.Items)
		}
	case TabAlbums:
		if result.Albums != nil {
			return albumRows(result.Albums.Items)
		}
	case TabPlaylists:
		if result.Playlists != nil {
			return playlistRows(result.Playlists.Items)
		}
	case TabShows:
		if result.Shows != nil {
			return showRows(result.Shows.Items)
		}
	case TabEpisodes:
		if result.Episodes != nil {
			return episodeRows(result.Episodes.Items)
		}
	}
	return nil
}

// resultCount returns the number of fetched entries for a tab.
func resultCount(result *spotify.SearchResult, tab Tab) int {
	if result == nil {
		return 0
	}
	switch tab {
	case TabTracks:
		if result.Tracks != nil {
			return len(result.Tracks.Items)
		}
	case TabArtists:
		if result.Artists != nil {
			return len(result.Artists.Items)
		}
	case TabAlbums:
		if result.Albums != nil {
			return len(result.Albums.Items)
		}
	case TabPlaylists:
		if result.Playlists != nil {
			return len(result.Playlists.Items)
		}
	case TabShows:
		if result.Shows != nil {
			return len(result.Shows.Items)
		}
	case TabEpisodes:
		if result.Episodes != nil {
			return len(result.Episodes.Items)
		}
	}
	return 0
}

// firstPopulatedTab returns the first tab with at least one result.
func firstPopulatedTab(result *spotify.SearchResult) (Tab, bool) {
	for tab := Tab(0); tab < tabCount; tab++ {
		if resultCount(result, tab) > 0 {
			return tab, true
		}
	}
	return 0, false
}

func trackRows(tracks []spotify.FullTrack) []Row {
	rows := make([]Row, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, Row{
			Kind:     spotifyid.KindTrack,
			Title:    track.Name,
			Subtitle: track.ArtistNames(),
			Playable: spotify.NewPlayableURI(track.ID.Ref),
			Detail: []DetailField{
				{Label: "Artists", Value: track.ArtistNames()},
				{Label: "Album", Value: track.Album.Name},
				{Label: "Released", Value: track.Album.ReleaseDate},
				{Label: "Length", Value: formatDuration(track.Duration())},
				{Label: "Popularity", Value: fmt.Sprintf("%d/100", track.Popularity)},
				{Label: "URI", Value: track.ID.URI()},
			},
		})
	}
	return rows
}

func artistRows(artists []spotify.FullArtist) []Row {
	rows := make([]Row, 0, len(artists))
	for _, artist := range artists {
		genres := artist.Genres
		if len(genres) > 3 {
			genres = genres[:3]
		}
		rows = append(rows, Row{
			Kind:     spotifyid.KindArtist,
			Title:    artist.Name,
			Subtitle: strings.Join(genres, ", "),
			Context:  spotify.NewContextURI(artist.ID.Ref),
			Detail: []DetailField{
				{Label: "Genres", Value: strings.Join(artist.Genres, ", ")},
				{Label: "Followers", Value: humanize.Comma(int64(artist.Followers.Total))},
				{Label: "Popularity", Value: fmt.Sprintf("%d/100", artist.Popularity)},
				{Label: "URI", Value: artist.ID.URI()},
			},
		})
	}
	return rows
}

func albumRows(albums []spotify.SimplifiedAlbum) []Row {
	rows := make([]Row, 0, len(albums))
	for _, album := range albums {
		rows = append(rows, Row{
			Kind:     spotifyid.KindAlbum,
			Title:    album.Name,
			Subtitle: artistNames(album.Artists) + " (" + releaseYear(album.ReleaseDate) + ")",
			Context:  spotify.NewContextURI(album.ID.Ref),
			Detail: []DetailField{
				{Label: "Artists", Value: artistNames(album.Artists)},
				{Label: "Type", Value: album.AlbumType},
				{Label: "Released", Value: album.ReleaseDate},
				{Label: "Tracks", Value: fmt.Sprintf("%d", album.TotalTracks)},
				{Label: "URI", Value: album.ID.URI()},
			},
		})
	}
	return rows
}

func playlistRows(playlists []spotify.SimplifiedPlaylist) []Row {
	rows := make([]Row, 0, len(playlists))
	for _, playlist := range playlists {
		rows = append(rows, Row{
			Kind:     spotifyid.KindPlaylist,
			Title:    playlist.Name,
			Subtitle: "by " + playlist.Owner.DisplayName,
			Context:  spotify.NewContextURI(playlist.ID.Ref),
			Detail: []DetailField{
				{Label: "Owner", Value: playlist.Owner.DisplayName},
				{Label: "Tracks", Value: humanize.Comma(int64(playlist.Tracks.Total))},
				{Label: "Description", Value: playlist.Description},
				{Label: "URI", Value: playlist.ID.URI()},
			},
		})
	}
	return rows
}

func showRows(shows []spotify.SimplifiedShow) []Row {
	rows := make([]Row, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, Row{
			Kind:     spotifyid.KindShow,
			Title:    show.Name,
			Subtitle: show.Publisher,
			Context:  spotify.NewContextURI(show.ID.Ref),
			Detail: []DetailField{
				{Label: "Publisher", Value: show.Publisher},
				{Label: "Episodes", Value: fmt.Sprintf("%d", show.TotalEpisodes)},
				{Label: "Description", Value: show.Description},
				{Label: "URI", Value: show.ID.URI()},
			},
		})
	}
	return rows
}

func episodeRows(episodes []spotify.SimplifiedEpisode) []Row {
	rows := make([]Row, 0, len(episodes))
	for _, episode := range episodes {
		rows = append(rows, Row{
			Kind:     spotifyid.KindEpisode,
			Title:    episode.Name,
			Subtitle: episode.ReleaseDate,
			Playable: spotify.NewPlayableURI(episode.ID.Ref),
			Detail: []DetailField{
				{Label: "Released", Value: episode.ReleaseDate},
				{Label: "Length", Value: formatDuration(episode.Duration())},
				{Label: "Description", Value: episode.Description},
				{Label: "URI", Value: episode.ID.URI()},
			},
		})
	}
	return rows
}

// artistNames joins the names on an embedded artist list.
func artistNames(artists []spotify.SimplifiedArtist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

// releaseYear truncates a release date to its year. Dates arrive with
// year, month, or day precision; the year prefix is always present.
func releaseYear(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}

// formatDuration renders a duration as m:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
