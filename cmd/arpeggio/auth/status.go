// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/clock"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

var statusParams struct {
	cli.JSONOutput
}

// sessionStatus is the --json shape of `auth status`.
type sessionStatus struct {
	LoggedIn   bool      `json:"logged_in"`
	CachePath  string    `json:"cache_path"`
	Scopes     []string  `json:"scopes,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
	Valid      bool      `json:"valid"`
	CanRefresh bool      `json:"can_refresh"`
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:    "status",
		Summary: "show the cached session",
		Usage:   "arpeggio auth status [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &statusParams)
		},
		Run: runStatus,
	}
}

func runStatus(ctx context.Context, args []string, logger *slog.Logger) error {
	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	store := spotify.NewFileTokenStore(config.TokenCachePath())
	status, err := sessionStatusFrom(store, clock.Real())
	if err != nil {
		return err
	}
	if handled, err := statusParams.EmitJSON(status); handled {
		return err
	}

	if !status.LoggedIn {
		fmt.Println("Not logged in. Run 'arpeggio auth login' to start a session.")
		return nil
	}

	fmt.Printf("Logged in. Token cached at %s.\n", status.CachePath)
	switch {
	case status.Valid:
		fmt.Printf("Access token expires %s.\n", humanize.Time(status.ExpiresAt))
	case status.CanRefresh:
		fmt.Printf("Access token expired %s; it will refresh on next use.\n",
			humanize.Time(status.ExpiresAt))
	default:
		fmt.Println("Access token expired and no refresh token is cached; log in again.")
	}
	if len(status.Scopes) > 0 {
		fmt.Printf("Scopes: %s\n", spotify.ScopeList(status.Scopes).String())
	}
	return nil
}

// sessionStatusFrom inspects the token cache. A missing cache file means
// no session, which is a status to report rather than an error.
func sessionStatusFrom(store *spotify.FileTokenStore, clk clock.Clock) (sessionStatus, error) {
	token, err := store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sessionStatus{LoggedIn: false, CachePath: store.Path()}, nil
		}
		return sessionStatus{}, err
	}

	return sessionStatus{
		LoggedIn:   true,
		CachePath:  store.Path(),
		Scopes:     token.Scopes,
		ExpiresAt:  token.ExpiresAt,
		Valid:      token.Valid(clk),
		CanRefresh: token.RefreshToken != "",
	}, nil
}
