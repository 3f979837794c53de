// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the `arpeggio auth` command group: the
// authorization-code login flow, logout, and session status.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

// Command returns the `auth` command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "auth",
		Summary: "manage the user session",
		Description: "Log in to Spotify with the OAuth authorization-code flow, " +
			"inspect the cached session, or log out.\n\n" +
			"Catalog commands (search, get, api) only need application " +
			"credentials; player and library commands need a logged-in user.",
		Subcommands: []*cli.Command{
			loginCommand(),
			statusCommand(),
			logoutCommand(),
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "remove the cached user token",
		Usage:   "arpeggio auth logout",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			config, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			store := spotify.NewFileTokenStore(config.TokenCachePath())
			if err := store.Clear(); err != nil {
				return err
			}

			logger.Debug("token cache cleared", "path", store.Path())
			fmt.Println("Logged out.")
			return nil
		},
	}
}
