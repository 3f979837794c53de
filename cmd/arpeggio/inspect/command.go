// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect implements `arpeggio inspect`: offline parsing of
// Spotify IDs, URIs, and share URLs into their canonical forms.
package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

var inspectParams struct {
	cli.JSONOutput
}

// inspection is one parsed identifier. URI and URL are empty for bare
// IDs, whose kind cannot be determined from the text alone.
type inspection struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	URI   string `json:"uri,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Command returns the `inspect` command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "inspect",
		Summary: "parse IDs, URIs, and share URLs",
		Description: "Parses each argument as a Spotify ID, spotify: URI, or " +
			"open.spotify.com URL and prints the canonical forms. Works " +
			"entirely offline; nothing is looked up against the API.",
		Usage: "arpeggio inspect <id|uri|url>... [flags]",
		Examples: []cli.Example{
			{
				Description: "parse a share URL copied from the app",
				Command:     "arpeggio inspect 'https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6?si=abc'",
			},
			{
				Description: "parse a URI and a bare ID together",
				Command:     "arpeggio inspect spotify:album:5ht7ItJgpBH7W6vJ5BqpPr 6rqhFgbbKwnb9MLmUQDhG6",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &inspectParams)
		},
		Run: runInspect,
	}
}

func runInspect(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("inspect requires at least one ID, URI, or URL")
	}

	var results []inspection
	failed := false
	for _, arg := range args {
		result, err := inspectResource(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", arg, err)
			failed = true
			continue
		}
		results = append(results, result)
	}

	if handled, err := inspectParams.EmitJSON(results); handled {
		if err != nil {
			return err
		}
	} else if len(results) > 0 {
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			rows = append(rows, []string{result.Kind, result.ID, result.URI, result.URL})
		}
		fmt.Println(cli.RenderTable([]string{"KIND", "ID", "URI", "URL"}, rows, nil))
	}

	if failed {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// inspectResource parses one user-supplied identifier after URL
// normalization.
func inspectResource(input string) (inspection, error) {
	normalized := cli.NormalizeResource(input)
	kind, ref, err := spotifyid.Identify(normalized)
	if err != nil {
		return inspection{}, err
	}

	result := inspection{
		Input: input,
		ID:    ref.ID(),
	}
	if kind == spotifyid.KindUnknown {
		// A bare ID names no kind, so it has no canonical URI or URL.
		result.Kind = "unknown"
		return result, nil
	}

	result.Kind = kind.String()
	result.URI = "spotify:" + kind.String() + ":" + ref.ID()
	result.URL = "https://open.spotify.com/" + kind.String() + "/" + ref.ID()
	return result, nil
}
