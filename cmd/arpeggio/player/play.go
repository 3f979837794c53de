// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package player

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

var playParams struct {
	Device string `flag:"device,d" desc:"target device ID (defaults to the active device)"`
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:    "play",
		Summary: "start or resume playback",
		Description: "With no arguments, resumes the current playback. With a " +
			"context (album, artist, playlist, or show), starts playing it. " +
			"With tracks or episodes, plays exactly that list. Bare IDs are " +
			"taken to be tracks.",
		Usage: "arpeggio player play [uri|url|id]... [flags]",
		Examples: []cli.Example{
			{
				Description: "resume playback",
				Command:     "arpeggio player play",
			},
			{
				Description: "play an album from the top",
				Command:     "arpeggio player play spotify:album:5ht7ItJgpBH7W6vJ5BqpPr",
			},
			{
				Description: "play two specific tracks",
				Command:     "arpeggio player play spotify:track:6rqhFgbbKwnb9MLmUQDhG6 spotify:track:11dFghVXANMlKmJXsNCbNl",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("play", &playParams)
		},
		Run: runPlay,
	}
}

func runPlay(ctx context.Context, args []string, logger *slog.Logger) error {
	options, err := playTarget(args)
	if err != nil {
		return err
	}
	options.DeviceID = playParams.Device

	client, err := userClient(logger)
	if err != nil {
		return err
	}
	if err := client.Play(ctx, options); err != nil {
		return err
	}

	switch {
	case !options.Context.IsZero():
		fmt.Printf("Playing %s.\n", options.Context)
	case len(options.URIs) > 0:
		fmt.Printf("Playing %d item(s).\n", len(options.URIs))
	default:
		fmt.Println("Resumed.")
	}
	return nil
}

// playTarget converts command arguments into play options: one context,
// or a list of playable items, or nothing (resume).
func playTarget(args []string) (spotify.PlayOptions, error) {
	var options spotify.PlayOptions

	for _, arg := range args {
		resource := cli.NormalizeResource(arg)
		kind, _, err := spotifyid.Identify(resource)
		if err != nil {
			return spotify.PlayOptions{}, err
		}

		switch kind {
		case spotifyid.KindAlbum, spotifyid.KindArtist, spotifyid.KindPlaylist, spotifyid.KindShow:
			if !options.Context.IsZero() {
				return spotify.PlayOptions{}, fmt.Errorf("only one context can be played at a time")
			}
			if len(options.URIs) > 0 {
				return spotify.PlayOptions{}, fmt.Errorf("cannot mix a context with individual tracks")
			}
			contextURI, err := parseContext(resource, kind)
			if err != nil {
				return spotify.PlayOptions{}, err
			}
			options.Context = contextURI

		case spotifyid.KindTrack, spotifyid.KindEpisode, spotifyid.KindUnknown:
			if !options.Context.IsZero() {
				return spotify.PlayOptions{}, fmt.Errorf("cannot mix a context with individual tracks")
			}
			uri, err := parsePlayable(resource, kind)
			if err != nil {
				return spotify.PlayOptions{}, err
			}
			options.URIs = append(options.URIs, uri)

		default:
			return spotify.PlayOptions{}, fmt.Errorf("%q is a %s and cannot be played", arg, kind)
		}
	}

	return options, nil
}

// parseContext parses a resource of a known context kind into a context
// URI.
func parseContext(resource string, kind spotifyid.Kind) (spotify.ContextURI, error) {
	switch kind {
	case spotifyid.KindAlbum:
		ref, err := spotifyid.ParseAlbumRef(resource)
		if err != nil {
			return spotify.ContextURI{}, err
		}
		return spotify.NewContextURI(ref), nil
	case spotifyid.KindArtist:
		ref, err := spotifyid.ParseArtistRef(resource)
		if err != nil {
			return spotify.ContextURI{}, err
		}
		return spotify.NewContextURI(ref), nil
	case spotifyid.KindPlaylist:
		ref, err := spotifyid.ParsePlaylistRef(resource)
		if err != nil {
			return spotify.ContextURI{}, err
		}
		return spotify.NewContextURI(ref), nil
	case spotifyid.KindShow:
		ref, err := spotifyid.ParseShowRef(resource)
		if err != nil {
			return spotify.ContextURI{}, err
		}
		return spotify.NewContextURI(ref), nil
	}
	return spotify.ContextURI{}, fmt.Errorf("%q is not a playback context", kind)
}

// parsePlayable parses a resource into a playable URI. Bare IDs
// (KindUnknown) are taken to be tracks.
func parsePlayable(resource string, kind spotifyid.Kind) (spotify.PlayableURI, error) {
	switch kind {
	case spotifyid.KindTrack, spotifyid.KindUnknown:
		ref, err := spotifyid.ParseTrackRef(resource)
		if err != nil {
			return spotify.PlayableURI{}, err
		}
		return spotify.NewPlayableURI(ref), nil
	case spotifyid.KindEpisode:
		ref, err := spotifyid.ParseEpisodeRef(resource)
		if err != nil {
			return spotify.PlayableURI{}, err
		}
		return spotify.NewPlayableURI(ref), nil
	}
	return spotify.PlayableURI{}, fmt.Errorf("%q is not playable", kind)
}

var queueParams struct {
	Device string `flag:"device,d" desc:"target device ID (defaults to the active device)"`
}

func queueCommand() *cli.Command {
	return &cli.Command{
		Name:    "queue",
		Summary: "add tracks or episodes to the queue",
		Usage:   "arpeggio player queue <uri|url|id>... [flags]",
		Examples: []cli.Example{
			{
				Description: "queue a track from a share URL",
				Command:     "arpeggio player queue 'https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6?si=x'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("queue", &queueParams)
		},
		Run: runQueue,
	}
}

func runQueue(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("queue requires at least one track or episode")
	}

	// Parse everything before queueing anything, so a typo in the last
	// argument does not leave the queue half-modified.
	uris := make([]spotify.PlayableURI, 0, len(args))
	for _, arg := range args {
		resource := cli.NormalizeResource(arg)
		kind, _, err := spotifyid.Identify(resource)
		if err != nil {
			return err
		}
		uri, err := parsePlayable(resource, kind)
		if err != nil {
			return err
		}
		uris = append(uris, uri)
	}

	client, err := userClient(logger)
	if err != nil {
		return err
	}
	for _, uri := range uris {
		if err := client.Queue(ctx, uri, queueParams.Device); err != nil {
			return err
		}
		fmt.Printf("Queued %s.\n", uri)
	}
	return nil
}
