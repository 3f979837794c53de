// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package spotify provides a typed Go client for the Spotify Web API.
//
// The client authenticates via OAuth2: the client-credentials flow for
// app-only access, or the authorization-code flow for user access with
// automatic refresh and an optional persistent token cache. It handles
// 429 backoff (Retry-After with a single bounded retry), pagination
// (next-href pagers over the standard page envelope), and structured
// error mapping for both the API and the accounts token endpoint.
//
// Resource identifiers flow through the lib/spotifyid types: endpoint
// methods take Ref views and decoded models carry owned IDs, so an id
// that reaches the wire has already been validated.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base URLs.
package spotify
