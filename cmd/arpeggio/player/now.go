// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package player

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/arpeggio-project/arpeggio/cmd/arpeggio/cli"
	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

var nowParams struct {
	cli.JSONOutput
}

func nowCommand() *cli.Command {
	return &cli.Command{
		Name:    "now",
		Summary: "show what is playing",
		Usage:   "arpeggio player now [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("now", &nowParams)
		},
		Run: runNow,
	}
}

func runNow(ctx context.Context, args []string, logger *slog.Logger) error {
	client, err := userClient(logger)
	if err != nil {
		return err
	}

	playback, err := client.CurrentPlayback(ctx)
	if err != nil {
		return err
	}
	if handled, err := nowParams.EmitJSON(playback); handled {
		return err
	}

	if playback == nil {
		fmt.Println("Nothing is playing.")
		return nil
	}
	fmt.Print(renderPlayback(playback))
	return nil
}

// renderPlayback formats the playback state for terminal output.
func renderPlayback(playback *spotify.CurrentPlayback) string {
	var out strings.Builder

	state := "Paused"
	if playback.IsPlaying {
		state = "Playing"
	}

	switch {
	case playback.Item == nil:
		fmt.Fprintf(&out, "%s (nothing loaded)\n", state)
	case playback.Item.Track != nil:
		track := playback.Item.Track
		fmt.Fprintf(&out, "%s: %s - %s\n", state, track.Name, track.ArtistNames())
		fmt.Fprintf(&out, "  Album:    %s\n", track.Album.Name)
		fmt.Fprintf(&out, "  Position: %s / %s\n",
			cli.FormatDuration(playback.Progress()),
			cli.FormatDuration(track.Duration()))
	case playback.Item.Episode != nil:
		episode := playback.Item.Episode
		fmt.Fprintf(&out, "%s: %s - %s\n", state, episode.Name, episode.Show.Name)
		fmt.Fprintf(&out, "  Position: %s / %s\n",
			cli.FormatDuration(playback.Progress()),
			cli.FormatDuration(episode.Duration()))
	}

	device := playback.Device.Name
	if playback.Device.VolumePercent != nil {
		device += fmt.Sprintf(", volume %d%%", *playback.Device.VolumePercent)
	}
	fmt.Fprintf(&out, "  Device:   %s (%s)\n", device, playback.Device.Type)

	shuffle := "off"
	if playback.ShuffleState {
		shuffle = "on"
	}
	fmt.Fprintf(&out, "  Shuffle:  %s   Repeat: %s\n", shuffle, playback.RepeatState)
	return out.String()
}

var devicesParams struct {
	cli.JSONOutput
}

func devicesCommand() *cli.Command {
	return &cli.Command{
		Name:    "devices",
		Summary: "list available playback devices",
		Usage:   "arpeggio player devices [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("devices", &devicesParams)
		},
		Run: runDevices,
	}
}

func runDevices(ctx context.Context, args []string, logger *slog.Logger) error {
	client, err := userClient(logger)
	if err != nil {
		return err
	}

	devices, err := client.Devices(ctx)
	if err != nil {
		return err
	}
	if handled, err := devicesParams.EmitJSON(devices); handled {
		return err
	}

	if len(devices) == 0 {
		fmt.Println("No devices available. Open Spotify on a device first.")
		return nil
	}
	fmt.Println(cli.RenderTable(
		[]string{"NAME", "TYPE", "ACTIVE", "VOLUME", "ID"},
		deviceRows(devices),
		[]cli.Alignment{cli.AlignLeft, cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
	))
	return nil
}

func deviceRows(devices []spotify.Device) [][]string {
	rows := make([][]string, 0, len(devices))
	for _, device := range devices {
		active := ""
		if device.IsActive {
			active = "yes"
		}
		volume := "-"
		if device.VolumePercent != nil {
			volume = strconv.Itoa(*device.VolumePercent) + "%"
		}
		rows = append(rows, []string{device.Name, device.Type, active, volume, device.ID})
	}
	return rows
}

var recentParams struct {
	cli.JSONOutput
	Limit int `flag:"limit,l" default:"20" desc:"entries to show (max 50)"`
}

func recentCommand() *cli.Command {
	return &cli.Command{
		Name:    "recent",
		Summary: "show recently played tracks",
		Usage:   "arpeggio player recent [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("recent", &recentParams)
		},
		Run: runRecent,
	}
}

func runRecent(ctx context.Context, args []string, logger *slog.Logger) error {
	client, err := userClient(logger)
	if err != nil {
		return err
	}

	history, err := client.RecentlyPlayed(ctx, spotify.RecentlyPlayedOptions{
		Limit: recentParams.Limit,
	})
	if err != nil {
		return err
	}
	if handled, err := recentParams.EmitJSON(history.Items); handled {
		return err
	}

	if len(history.Items) == 0 {
		fmt.Println("No listening history.")
		return nil
	}
	fmt.Println(cli.RenderTable(
		[]string{"PLAYED", "TRACK", "ARTISTS"},
		historyRows(history.Items),
		nil,
	))
	return nil
}

func historyRows(items []spotify.PlayHistory) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			humanize.Time(item.PlayedAt),
			item.Track.Name,
			item.Track.ArtistNames(),
		})
	}
	return rows
}
