// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package player implements the `arpeggio player` command group:
// playback state, transport control, queueing, devices, and listening
// history over Spotify Connect.
package player

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

// Command returns the `player` command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "player",
		Summary: "control playback on your devices",
		Description: "Inspect and control playback on Spotify Connect " +
			"devices. All player commands need a logged-in user " +
			"(arpeggio auth login); transport control additionally needs " +
			"Spotify Premium.",
		Subcommands: []*cli.Command{
			nowCommand(),
			playCommand(),
			pauseCommand(),
			nextCommand(),
			previousCommand(),
			queueCommand(),
			devicesCommand(),
			recentCommand(),
		},
	}
}

var pauseParams struct {
	Device string `flag:"device,d" desc:"target device ID (defaults to the active device)"`
}

func pauseCommand() *cli.Command {
	return &cli.Command{
		Name:    "pause",
		Summary: "pause playback",
		Usage:   "arpeggio player pause [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("pause", &pauseParams)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, err := userClient(logger)
			if err != nil {
				return err
			}
			if err := client.Pause(ctx, pauseParams.Device); err != nil {
				return err
			}
			fmt.Println("Paused.")
			return nil
		},
	}
}

var nextParams struct {
	Device string `flag:"device,d" desc:"target device ID (defaults to the active device)"`
}

func nextCommand() *cli.Command {
	return &cli.Command{
		Name:    "next",
		Summary: "skip to the next item",
		Usage:   "arpeggio player next [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("next", &nextParams)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, err := userClient(logger)
			if err != nil {
				return err
			}
			if err := client.SkipNext(ctx, nextParams.Device); err != nil {
				return err
			}
			fmt.Println("Skipped to next.")
			return nil
		},
	}
}

var previousParams struct {
	Device string `flag:"device,d" desc:"target device ID (defaults to the active device)"`
}

func previousCommand() *cli.Command {
	return &cli.Command{
		Name:    "previous",
		Summary: "skip to the previous item",
		Usage:   "arpeggio player previous [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("previous", &previousParams)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			client, err := userClient(logger)
			if err != nil {
				return err
			}
			if err := client.SkipPrevious(ctx, previousParams.Device); err != nil {
				return err
			}
			fmt.Println("Skipped to previous.")
			return nil
		},
	}
}

// userClient loads the config and builds a user-session client. Every
// player command starts here.
func userClient(logger *slog.Logger) (*spotify.Client, error) {
	config, err := cli.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cli.UserClient(config, logger)
}
