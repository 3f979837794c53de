// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package search implements `arpeggio search`: catalog search across
// tracks, artists, albums, playlists, shows, and episodes.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

var searchParams struct {
	cli.JSONOutput
	Types  []string `flag:"type,t" default:"track" desc:"kinds to search: track, artist, album, playlist, show, episode"`
	Limit  int      `flag:"limit,l" default:"10" desc:"results per kind (max 50)"`
	Market string   `flag:"market,m" desc:"market as an ISO 3166-1 alpha-2 country code"`
}

// Command returns the `search` command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "search",
		Summary: "search the catalog",
		Description: "Searches the Spotify catalog. Multiple words form one " +
			"query; field filters like artist: and year: pass through to the " +
			"API unchanged.",
		Usage: "arpeggio search <query>... [flags]",
		Examples: []cli.Example{
			{
				Description: "search tracks (the default kind)",
				Command:     "arpeggio search blue in green",
			},
			{
				Description: "search several kinds at once",
				Command:     "arpeggio search --type track,album,artist kind of blue",
			},
			{
				Description: "narrow with a field filter and market",
				Command:     "arpeggio search --market SE 'artist:Miles Davis year:1959'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("search", &searchParams)
		},
		Run: runSearch,
	}
}

func runSearch(ctx context.Context, args []string, logger *slog.Logger) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("search requires a query")
	}

	kinds, err := parseKinds(searchParams.Types)
	if err != nil {
		return err
	}

	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	market, err := cli.ResolveMarket(searchParams.Market, config)
	if err != nil {
		return err
	}
	client, err := cli.AppClient(config, logger)
	if err != nil {
		return err
	}

	result, err := client.Search(ctx, query, kinds, spotify.SearchOptions{
		Market: market,
		Limit:  searchParams.Limit,
	})
	if err != nil {
		return err
	}

	if handled, err := searchParams.EmitJSON(result); handled {
		return err
	}
	renderResult(result)
	return nil
}

// parseKinds resolves kind names from the --type flag, deduplicating
// while preserving order.
func parseKinds(names []string) ([]spotifyid.Kind, error) {
	var kinds []spotifyid.Kind
	seen := make(map[spotifyid.Kind]bool)
	for _, name := range names {
		kind, err := spotifyid.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func renderResult(result *spotify.SearchResult) {
	sections := 0

	if result.Tracks != nil && len(result.Tracks.Items) > 0 {
		printSection(&sections, "Tracks", result.Tracks.Total)
		fmt.Println(cli.RenderTable(
			[]string{"TRACK", "ARTISTS", "ALBUM", "LENGTH", "URI"},
			trackRows(result.Tracks.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
		))
	}
	if result.Artists != nil && len(result.Artists.Items) > 0 {
		printSection(&sections, "Artists", result.Artists.Total)
		fmt.Println(cli.RenderTable(
			[]string{"ARTIST", "FOLLOWERS", "GENRES", "URI"},
			artistRows(result.Artists.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignRight, cli.AlignLeft, cli.AlignLeft},
		))
	}
	if result.Albums != nil && len(result.Albums.Items) > 0 {
		printSection(&sections, "Albums", result.Albums.Total)
		fmt.Println(cli.RenderTable(
			[]string{"ALBUM", "ARTISTS", "RELEASED", "URI"},
			albumRows(result.Albums.Items),
			nil,
		))
	}
	if result.Playlists != nil && len(result.Playlists.Items) > 0 {
		printSection(&sections, "Playlists", result.Playlists.Total)
		fmt.Println(cli.RenderTable(
			[]string{"PLAYLIST", "OWNER", "TRACKS", "URI"},
			playlistRows(result.Playlists.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
		))
	}
	if result.Shows != nil && len(result.Shows.Items) > 0 {
		printSection(&sections, "Shows", result.Shows.Total)
		fmt.Println(cli.RenderTable(
			[]string{"SHOW", "PUBLISHER", "EPISODES", "URI"},
			showRows(result.Shows.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
		))
	}
	if result.Episodes != nil && len(result.Episodes.Items) > 0 {
		printSection(&sections, "Episodes", result.Episodes.Total)
		fmt.Println(cli.RenderTable(
			[]string{"EPISODE", "RELEASED", "LENGTH", "URI"},
			episodeRows(result.Episodes.Items),
			[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
		))
	}

	if sections == 0 {
		fmt.Println("No results.")
	}
}

func printSection(sections *int, name string, total int) {
	if *sections > 0 {
		fmt.Println()
	}
	*sections++
	fmt.Printf("%s (%s total)\n", name, humanize.Comma(int64(total)))
}

func trackRows(tracks []spotify.FullTrack) [][]string {
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			track.Name,
			track.ArtistNames(),
			track.Album.Name,
			cli.FormatDuration(track.Duration()),
			track.ID.URI(),
		})
	}
	return rows
}

func artistRows(artists []spotify.FullArtist) [][]string {
	rows := make([][]string, 0, len(artists))
	for _, artist := range artists {
		genres := artist.Genres
		if len(genres) > 3 {
			genres = genres[:3]
		}
		rows = append(rows, []string{
			artist.Name,
			humanize.Comma(int64(artist.Followers.Total)),
			strings.Join(genres, ", "),
			artist.ID.URI(),
		})
	}
	return rows
}

func albumRows(albums []spotify.SimplifiedAlbum) [][]string {
	rows := make([][]string, 0, len(albums))
	for _, album := range albums {
		rows = append(rows, []string{
			album.Name,
			cli.JoinArtists(album.Artists),
			album.ReleaseDate,
			album.ID.URI(),
		})
	}
	return rows
}

func playlistRows(playlists []spotify.SimplifiedPlaylist) [][]string {
	rows := make([][]string, 0, len(playlists))
	for _, playlist := range playlists {
		rows = append(rows, []string{
			playlist.Name,
			playlist.Owner.DisplayName,
			strconv.Itoa(playlist.Tracks.Total),
			playlist.ID.URI(),
		})
	}
	return rows
}

func showRows(shows []spotify.SimplifiedShow) [][]string {
	rows := make([][]string, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, []string{
			show.Name,
			show.Publisher,
			strconv.Itoa(show.TotalEpisodes),
			show.ID.URI(),
		})
	}
	return rows
}

func episodeRows(episodes []spotify.SimplifiedEpisode) [][]string {
	rows := make([][]string, 0, len(episodes))
	for _, episode := range episodes {
		rows = append(rows, []string{
			episode.Name,
			episode.ReleaseDate,
			cli.FormatDuration(episode.Duration()),
			episode.ID.URI(),
		})
	}
	return rows
}
