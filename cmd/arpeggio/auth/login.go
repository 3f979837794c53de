// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

var loginParams struct {
	Scopes     []string `flag:"scopes" desc:"OAuth scopes to request (defaults to everything the CLI can use)"`
	ShowDialog bool     `flag:"show-dialog" desc:"force the consent dialog even when already approved"`
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:    "login",
		Summary: "authorize the CLI with your Spotify account",
		Description: "Starts the OAuth authorization-code flow: prints an " +
			"authorization URL to open in a browser, then reads the redirect " +
			"URL you land on after approving. The resulting token is cached " +
			"on disk and refreshed automatically.",
		Usage: "arpeggio auth login [flags]",
		Examples: []cli.Example{
			{
				Description: "log in with the default scopes",
				Command:     "arpeggio auth login",
			},
			{
				Description: "request only playback scopes",
				Command:     "arpeggio auth login --scopes user-read-playback-state,user-modify-playback-state",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("login", &loginParams)
		},
		Run: runLogin,
	}
}

func runLogin(ctx context.Context, args []string, logger *slog.Logger) error {
	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	creds, err := config.Credentials()
	if err != nil {
		return err
	}

	scopes := loginParams.Scopes
	if len(scopes) == 0 {
		scopes = cli.DefaultScopes
	}

	store := spotify.NewFileTokenStore(config.TokenCachePath())
	authenticator := spotify.NewAuthorizationCode(creds, spotify.OAuthConfig{
		RedirectURI: config.RedirectURI,
		Scopes:      scopes,
		ShowDialog:  loginParams.ShowDialog,
	}, spotify.AuthOptions{Store: store})

	state, err := spotify.RandomState()
	if err != nil {
		return fmt.Errorf("generating state: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Open this URL in a browser and approve access:\n\n  %s\n\n",
		authenticator.AuthorizeURL(state))
	fmt.Fprintf(os.Stderr, "After approving, the browser lands on %s.\n", config.RedirectURI)
	fmt.Fprint(os.Stderr, "Paste the full redirect URL here: ")

	redirect, err := readLine(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading redirect URL: %w", err)
	}

	code, returnedState, err := spotify.ParseRedirect(redirect)
	if err != nil {
		return err
	}
	if returnedState != state {
		return fmt.Errorf("state mismatch in redirect URL; run login again")
	}

	token, err := authenticator.Exchange(ctx, code)
	if err != nil {
		return err
	}

	logger.Debug("token cached", "path", store.Path(), "scopes", len(token.Scopes))
	fmt.Printf("Logged in. Token cached at %s, expires %s.\n",
		store.Path(), humanize.Time(token.ExpiresAt))
	return nil
}

// readLine reads one line from r, trimming the trailing newline and any
// surrounding whitespace.
func readLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
