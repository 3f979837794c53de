// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package api implements `arpeggio api`: raw GET requests against
// arbitrary Web API paths, with pretty-printed and highlighted JSON
// output on terminals.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

var apiParams struct {
	User bool `flag:"user,u" desc:"send the request with the logged-in user session"`
	Raw  bool `flag:"raw" desc:"print the response body exactly as received"`
}

// Command returns the `api` command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "api",
		Summary: "issue a raw API request",
		Description: "Sends a GET request to the given Web API path and prints " +
			"the JSON response. Useful for endpoints the CLI has no dedicated " +
			"command for. Paths are relative to https://api.spotify.com/v1.",
		Usage: "arpeggio api <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "fetch new releases",
				Command:     "arpeggio api /browse/new-releases",
			},
			{
				Description: "fetch your profile with the user session",
				Command:     "arpeggio api /me --user",
			},
			{
				Description: "pipe raw output to jq",
				Command:     "arpeggio api '/search?q=miles&type=track' --raw | jq .tracks.total",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("api", &apiParams)
		},
		Run: runAPI,
	}
}

func runAPI(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("api requires exactly one path")
	}

	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	var client *spotify.Client
	if apiParams.User {
		client, err = cli.UserClient(config, logger)
	} else {
		client, err = cli.AppClient(config, logger)
	}
	if err != nil {
		return err
	}

	body, err := client.Raw(ctx, http.MethodGet, args[0])
	if err != nil {
		return err
	}

	return printResponse(os.Stdout, body, apiParams.Raw)
}

// printResponse writes the response body: verbatim in raw mode or when
// it is not JSON, indented otherwise, and syntax-highlighted when
// writing to a terminal.
func printResponse(out *os.File, body []byte, raw bool) error {
	if raw {
		_, err := out.Write(append(body, '\n'))
		return err
	}

	pretty, err := prettyJSON(body)
	if err != nil {
		// Not JSON; pass it through untouched.
		_, err := out.Write(append(body, '\n'))
		return err
	}

	if term.IsTerminal(int(out.Fd())) {
		if err := quick.Highlight(out, string(pretty)+"\n", "json", highlightFormatter(), "monokai"); err == nil {
			return nil
		}
		// Highlighting failure falls through to plain output.
	}
	_, err = out.Write(append(pretty, '\n'))
	return err
}

// highlightFormatter picks the chroma formatter matching the color
// capabilities termenv detects for the terminal.
func highlightFormatter() string {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}

// prettyJSON re-indents a JSON document.
func prettyJSON(body []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, bytes.TrimSpace(body), "", "  "); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
