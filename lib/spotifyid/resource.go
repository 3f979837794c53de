// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

// Resource is the closed set of type-level tags an identifier can carry:
// the 7 concrete resource kinds plus the three wildcard group tags. The
// unexported method keeps the set closed to this package; the compile
// time guarantees of the identifier types rest on no outside tag
// sneaking in.
type Resource interface {
	kind() Kind
}

// Concrete resource tags. Each is a zero-size type whose only job is to
// pin an identifier to its kind at compile time.
type (
	Artist   struct{}
	Album    struct{}
	Track    struct{}
	Playlist struct{}
	User     struct{}
	Show     struct{}
	Episode  struct{}
)

func (Artist) kind() Kind   { return KindArtist }
func (Album) kind() Kind    { return KindAlbum }
func (Track) kind() Kind    { return KindTrack }
func (Playlist) kind() Kind { return KindPlaylist }
func (User) kind() Kind     { return KindUser }
func (Show) kind() Kind     { return KindShow }
func (Episode) kind() Kind  { return KindEpisode }

// Group resource tags. All three carry [KindUnknown]: a group identifier
// remembers the id characters of whatever it was widened or parsed from,
// but not the concrete kind.
type (
	// Any admits every resource kind.
	Any struct{}
	// PlayContext admits resources a player can use as a listening
	// context: artist, album, playlist, show.
	PlayContext struct{}
	// Playable admits resources playable as media: track, episode.
	Playable struct{}
)

func (Any) kind() Kind         { return KindUnknown }
func (PlayContext) kind() Kind { return KindUnknown }
func (Playable) kind() Kind    { return KindUnknown }

// PlayContextResource constrains widening into [PlayContextRef]. Only
// these four kinds can be a listening context; the constraint is the
// whole enforcement; there is no runtime check to get past. Resource is
// embedded alongside the union so a type parameter constrained here
// provably satisfies Resource; the union members all implement it, so
// the type set is unchanged.
type PlayContextResource interface {
	Resource
	Artist | Album | Playlist | Show
}

// PlayableResource constrains widening into [PlayableRef].
type PlayableResource interface {
	Resource
	Track | Episode
}
