// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package get implements `arpeggio get`: fetching and rendering any
// catalog resource named by a URI or share URL.
package get

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

var getParams struct {
	cli.JSONOutput
	Market string `flag:"market,m" desc:"market as an ISO 3166-1 alpha-2 country code"`
}

// Command returns the `get` command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "get",
		Summary: "fetch a track, album, artist, playlist, show, episode, or user",
		Description: "Looks up the resource named by a spotify: URI or " +
			"open.spotify.com URL and prints its details. The resource kind " +
			"is taken from the URI, so bare IDs are rejected.",
		Usage: "arpeggio get <uri|url> [flags]",
		Examples: []cli.Example{
			{
				Description: "fetch an album with its track listing",
				Command:     "arpeggio get spotify:album:5ht7ItJgpBH7W6vJ5BqpPr",
			},
			{
				Description: "fetch a track from a share URL, as JSON",
				Command:     "arpeggio get 'https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6?si=x' --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &getParams)
		},
		Run: runGet,
	}
}

func runGet(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("get requires exactly one URI or URL")
	}

	resource := cli.NormalizeResource(args[0])
	kind, _, err := spotifyid.Identify(resource)
	if err != nil {
		return err
	}
	if kind == spotifyid.KindUnknown {
		return fmt.Errorf("a bare ID names no resource kind; pass a spotify: URI or share URL")
	}

	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	market, err := cli.ResolveMarket(getParams.Market, config)
	if err != nil {
		return err
	}
	client, err := cli.AppClient(config, logger)
	if err != nil {
		return err
	}

	switch kind {
	case spotifyid.KindTrack:
		return showTrack(ctx, client, resource, market)
	case spotifyid.KindAlbum:
		return showAlbum(ctx, client, resource, market)
	case spotifyid.KindArtist:
		return showArtist(ctx, client, resource, market)
	case spotifyid.KindPlaylist:
		return showPlaylist(ctx, client, resource, market)
	case spotifyid.KindShow:
		return showShow(ctx, client, resource, market)
	case spotifyid.KindEpisode:
		return showEpisode(ctx, client, resource, market)
	case spotifyid.KindUser:
		return showUser(ctx, client, resource)
	}
	return fmt.Errorf("unsupported resource kind %q", kind)
}

func showTrack(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParseTrackRef(resource)
	if err != nil {
		return err
	}
	track, err := client.Track(ctx, ref, spotify.TrackOptions{Market: market})
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(track); handled {
		return err
	}
	renderTrack(track)
	return nil
}

func showAlbum(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParseAlbumRef(resource)
	if err != nil {
		return err
	}
	album, err := client.Album(ctx, ref, spotify.AlbumOptions{Market: market})
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(album); handled {
		return err
	}
	renderAlbum(album)
	return nil
}

func showArtist(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParseArtistRef(resource)
	if err != nil {
		return err
	}
	artist, err := client.Artist(ctx, ref)
	if err != nil {
		return err
	}

	// Top tracks are market-gated; skip them when no market is known
	// rather than failing the whole lookup.
	var topTracks []spotify.FullTrack
	if market != "" {
		topTracks, err = client.ArtistTopTracks(ctx, ref, market)
		if err != nil {
			return err
		}
	}

	if handled, err := getParams.EmitJSON(artist); handled {
		return err
	}
	renderArtist(artist, topTracks)
	return nil
}

func showPlaylist(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParsePlaylistRef(resource)
	if err != nil {
		return err
	}
	playlist, err := client.Playlist(ctx, ref, spotify.PlaylistOptions{Market: market})
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(playlist); handled {
		return err
	}
	renderPlaylist(playlist)
	return nil
}

func showShow(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParseShowRef(resource)
	if err != nil {
		return err
	}
	show, err := client.Show(ctx, ref, spotify.ShowOptions{Market: market})
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(show); handled {
		return err
	}
	renderShow(show)
	return nil
}

func showEpisode(ctx context.Context, client *spotify.Client, resource string, market spotify.Market) error {
	ref, err := spotifyid.ParseEpisodeRef(resource)
	if err != nil {
		return err
	}
	episode, err := client.Episode(ctx, ref, spotify.ShowOptions{Market: market})
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(episode); handled {
		return err
	}
	renderEpisode(episode)
	return nil
}

func showUser(ctx context.Context, client *spotify.Client, resource string) error {
	ref, err := spotifyid.ParseUserRef(resource)
	if err != nil {
		return err
	}
	user, err := client.User(ctx, ref)
	if err != nil {
		return err
	}
	if handled, err := getParams.EmitJSON(user); handled {
		return err
	}
	renderUser(user)
	return nil
}
