// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package spotifyid provides strongly typed, immutable Spotify resource
// identifiers. Every resource the Web API addresses (artist, album,
// track, playlist, user, show, episode) is represented by a validated
// value type, so a function that wants a track can't silently be handed
// an album.
//
// A valid identifier is a non-empty string of ASCII alphanumeric
// characters. Identifiers are parsed from three spellings:
//
//   - bare id:      4iV5W9uYEdYUVa79Axb7Rh
//   - colon URI:    spotify:track:4iV5W9uYEdYUVa79Axb7Rh
//   - slash URI:    spotify/track/4iV5W9uYEdYUVa79Axb7Rh
//
// Mixed separators are rejected. A bare id carries no kind of its own;
// the kind is asserted by the type the caller parses into. URI parsing
// checks the embedded kind name against the target type and fails with
// [ErrInvalidType] on a mismatch.
//
// # Views and owned buffers
//
// Each kind comes in two representations. The Ref form ([TrackRef],
// [ArtistRef], ...) is a zero-copy view: parsing produces a value whose
// string shares the backing array of the input, so a view parsed out of
// a large buffer keeps that buffer reachable. The ID form ([TrackID],
// [ArtistID], ...) owns detached storage with an independent lifetime.
// Ref.Clone copies once to produce an ID; the ID's embedded Ref field is
// the free conversion back. Both are comparable and usable as map keys.
//
// Construction always goes through validation: there is no way to wrap
// an arbitrary string without parsing it, and no constructed identifier
// is ever mutated.
//
// # Group kinds
//
// Three wildcard families hold the data of any concrete kind while
// carrying the generic "unknown" tag themselves: [AnyRef] accepts every
// kind, [PlayContextRef] is restricted to resources a player can use as
// a listening context (artist, album, playlist, show), and [PlayableRef]
// to resources playable as media (track, episode). The restriction is
// enforced by which widening conversions exist ([AsPlayContext],
// [AsPlayable], and [AsAny]), not by runtime checks: parsing one of the
// group types from a URI accepts any recognized kind name. Widening
// never fails, never copies, and never re-validates; there is no
// narrowing back to a concrete kind.
//
// JSON and text marshaling emit the raw id (what API payloads carry);
// String renders the canonical URI form. Unmarshaling is defined only on
// the owned ID forms and validates its input.
package spotifyid
