// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete arpeggio CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	apicmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/api"
	authcmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/auth"
	browsecmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/browse"
	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	getcmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/get"
	inspectcmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/inspect"
	playercmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/player"
	searchcmd "github.com/arpeggio-project/arpeggio/cmd/arpeggio/search"
	"github.com/arpeggio-project/arpeggio/lib/version"
)

// Root builds and returns the complete arpeggio CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "arpeggio",
		Description: `Arpeggio: Spotify from the command line.

Search the catalog, fetch tracks, albums, artists, playlists, shows,
and episodes, control playback on your devices, and browse results in
a full-screen terminal UI.

Catalog commands need Spotify application credentials, supplied via
SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET or the config file
(~/.config/arpeggio/config.yaml). Playback commands additionally need
a user login (arpeggio auth login).`,
		Subcommands: []*cli.Command{
			searchcmd.Command(),
			getcmd.Command(),
			browsecmd.Command(),
			playercmd.Command(),
			authcmd.Command(),
			inspectcmd.Command(),
			apicmd.Command(),
			{
				Name:    "version",
				Summary: "print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("arpeggio %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "search the catalog",
				Command:     "arpeggio search --type track,album kind of blue",
			},
			{
				Description: "fetch any resource by ID, URI, or open.spotify.com URL",
				Command:     "arpeggio get spotify:album:4sb0eMpDn3upAFfyi4q2rw",
			},
			{
				Description: "browse search results interactively",
				Command:     "arpeggio browse miles davis",
			},
			{
				Description: "log in for playback control",
				Command:     "arpeggio auth login",
			},
			{
				Description: "queue a track on the active device",
				Command:     "arpeggio player queue 11dFghVXANMlKmJXsNCbNl",
			},
			{
				Description: "inspect an identifier without touching the network",
				Command:     "arpeggio inspect https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl",
			},
		},
	}
}
