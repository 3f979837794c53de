// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package browse implements `arpeggio browse`: a full-screen
// interactive browser over catalog search.
package browse

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/browseui"
)

var browseParams struct {
	Market string `flag:"market,m" desc:"market as an ISO 3166-1 alpha-2 country code"`
}

// Command returns the `browse` command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Summary: "browse the catalog interactively",
		Description: "Opens a full-screen browser over catalog search. Type a " +
			"query and press enter, then move between result tabs with h/l and " +
			"through the list with j/k. Enter queues the selected track or " +
			"episode, p starts playback. Queueing and playback need a prior " +
			"'arpeggio auth login'; without one the browser is read-only.",
		Usage: "arpeggio browse [query]... [flags]",
		Examples: []cli.Example{
			{
				Description: "open the browser with an empty search box",
				Command:     "arpeggio browse",
			},
			{
				Description: "open with an initial search",
				Command:     "arpeggio browse kind of blue",
			},
			{
				Description: "restrict results to one market",
				Command:     "arpeggio browse --market SE queen",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("browse", &browseParams)
		},
		Run: runBrowse,
	}
}

func runBrowse(ctx context.Context, args []string, logger *slog.Logger) error {
	config, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	market, err := cli.ResolveMarket(browseParams.Market, config)
	if err != nil {
		return err
	}
	searcher, err := cli.AppClient(config, logger)
	if err != nil {
		return err
	}

	options := browseui.Options{
		Market: market,
		Query:  strings.TrimSpace(strings.Join(args, " ")),
	}

	// Queueing and playback need a user session. Browsing does not, so
	// a missing login degrades to read-only instead of failing.
	if player, err := cli.UserClient(config, logger); err == nil {
		options.Player = player
	} else {
		logger.Debug("browse: playback disabled", "error", err)
	}

	model := browseui.NewModel(searcher, options)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
