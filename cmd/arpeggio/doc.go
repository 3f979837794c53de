// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Arpeggio is a command-line client for the Spotify Web API. It
// provides subcommands for catalog search (search, get, browse),
// playback control on Connect devices (player), credential and token
// management (auth), offline identifier parsing (inspect), and raw
// API access (api).
package main
