// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/version"
)

// DefaultScopes are the authorizations requested at login. They cover
// everything the CLI can do with a user session: playback control, library
// and playlist edits, and profile reads.
var DefaultScopes = []string{
	"playlist-modify-private",
	"playlist-modify-public",
	"playlist-read-collaborative",
	"playlist-read-private",
	"user-library-modify",
	"user-library-read",
	"user-modify-playback-state",
	"user-read-currently-playing",
	"user-read-playback-state",
	"user-read-private",
	"user-read-recently-played",
}

// AppClient builds a client authenticated with the client-credentials
// flow. Suitable for catalog commands that touch no user data.
func AppClient(config *Config, logger *slog.Logger) (*spotify.Client, error) {
	creds, err := config.Credentials()
	if err != nil {
		return nil, err
	}
	authenticator := spotify.NewClientCredentials(creds, spotify.AuthOptions{})
	return spotify.NewClient(spotify.Config{
		Authenticator: authenticator,
		UserAgent:     version.UserAgent(),
		Logger:        logger,
	})
}

// UserClient builds a client backed by the cached user token from a prior
// login. Returns a login hint when no token is cached.
func UserClient(config *Config, logger *slog.Logger) (*spotify.Client, error) {
	authenticator, store, err := UserAuthenticator(config)
	if err != nil {
		return nil, err
	}

	if _, err := store.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("not logged in; run 'arpeggio auth login' first")
		}
		return nil, err
	}

	return spotify.NewClient(spotify.Config{
		Authenticator: authenticator,
		UserAgent:     version.UserAgent(),
		Logger:        logger,
	})
}

// UserAuthenticator builds the authorization-code authenticator and the
// token store backing it. Login and logout work with these directly.
func UserAuthenticator(config *Config) (*spotify.AuthorizationCode, *spotify.FileTokenStore, error) {
	creds, err := config.Credentials()
	if err != nil {
		return nil, nil, err
	}

	store := spotify.NewFileTokenStore(config.TokenCachePath())
	authenticator := spotify.NewAuthorizationCode(creds, spotify.OAuthConfig{
		RedirectURI: config.RedirectURI,
		Scopes:      DefaultScopes,
	}, spotify.AuthOptions{Store: store})

	return authenticator, store, nil
}

// NormalizeResource converts an open.spotify.com URL to the spotify:kind:id
// URI form. IDs, URIs, and anything unrecognized pass through unchanged, so
// callers can hand the result straight to the identifier parser.
func NormalizeResource(text string) string {
	trimmed := strings.TrimSpace(text)

	const host = "open.spotify.com/"
	index := strings.Index(trimmed, host)
	if index < 0 {
		return trimmed
	}

	rest := trimmed[index+len(host):]
	if cut := strings.IndexAny(rest, "?#"); cut >= 0 {
		rest = rest[:cut]
	}

	segments := strings.Split(strings.Trim(rest, "/"), "/")
	// Web player URLs may carry a locale segment such as "intl-pt".
	for len(segments) > 0 && strings.HasPrefix(segments[0], "intl-") {
		segments = segments[1:]
	}
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return trimmed
	}

	return "spotify:" + segments[0] + ":" + segments[1]
}
