// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package browseui implements the interactive catalog browser: a
// bubbletea application with a search box, one result tab per resource
// kind, and a detail pane for the selected entry.
//
// The model searches through a Searcher (satisfied by *spotify.Client)
// and, when the caller supplies a Player, can queue tracks and episodes
// and start playback on the user's active device. Without a Player the
// browser is read-only and the help bar shows a login hint.
package browseui
