// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

import "fmt"

// The public identifier families, one pair of types per kind plus three
// constructors. Parse{Kind}Ref accepts a bare id or either URI spelling
// (the [FromIDOrURI] contract) and returns a zero-copy view;
// Parse{Kind}ID is the same parse into owned storage (a single copy);
// MustParse{Kind}ID panics on error and exists for tests and literals.
// Callers that need strict bare-id or strict URI parsing use the generic
// [FromID] and [FromURI] directly.

func parseID[R Resource](text string) (ID[R], error) {
	ref, err := FromIDOrURI[R](text)
	if err != nil {
		return ID[R]{}, err
	}
	return ref.Clone(), nil
}

// Artist identifiers.
type (
	ArtistRef = Ref[Artist]
	ArtistID  = ID[Artist]
)

// ParseArtistRef parses an artist id or URI into a zero-copy view.
func ParseArtistRef(text string) (ArtistRef, error) { return FromIDOrURI[Artist](text) }

// ParseArtistID parses an artist id or URI into owned storage.
func ParseArtistID(text string) (ArtistID, error) { return parseID[Artist](text) }

// MustParseArtistID panics if text does not parse.
func MustParseArtistID(text string) ArtistID {
	id, err := ParseArtistID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseArtistID(%q): %v", text, err))
	}
	return id
}

// Album identifiers.
type (
	AlbumRef = Ref[Album]
	AlbumID  = ID[Album]
)

// ParseAlbumRef parses an album id or URI into a zero-copy view.
func ParseAlbumRef(text string) (AlbumRef, error) { return FromIDOrURI[Album](text) }

// ParseAlbumID parses an album id or URI into owned storage.
func ParseAlbumID(text string) (AlbumID, error) { return parseID[Album](text) }

// MustParseAlbumID panics if text does not parse.
func MustParseAlbumID(text string) AlbumID {
	id, err := ParseAlbumID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseAlbumID(%q): %v", text, err))
	}
	return id
}

// Track identifiers.
type (
	TrackRef = Ref[Track]
	TrackID  = ID[Track]
)

// ParseTrackRef parses a track id or URI into a zero-copy view.
func ParseTrackRef(text string) (TrackRef, error) { return FromIDOrURI[Track](text) }

// ParseTrackID parses a track id or URI into owned storage.
func ParseTrackID(text string) (TrackID, error) { return parseID[Track](text) }

// MustParseTrackID panics if text does not parse.
func MustParseTrackID(text string) TrackID {
	id, err := ParseTrackID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseTrackID(%q): %v", text, err))
	}
	return id
}

// Playlist identifiers.
type (
	PlaylistRef = Ref[Playlist]
	PlaylistID  = ID[Playlist]
)

// ParsePlaylistRef parses a playlist id or URI into a zero-copy view.
func ParsePlaylistRef(text string) (PlaylistRef, error) { return FromIDOrURI[Playlist](text) }

// ParsePlaylistID parses a playlist id or URI into owned storage.
func ParsePlaylistID(text string) (PlaylistID, error) { return parseID[Playlist](text) }

// MustParsePlaylistID panics if text does not parse.
func MustParsePlaylistID(text string) PlaylistID {
	id, err := ParsePlaylistID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParsePlaylistID(%q): %v", text, err))
	}
	return id
}

// User identifiers.
type (
	UserRef = Ref[User]
	UserID  = ID[User]
)

// ParseUserRef parses a user id or URI into a zero-copy view.
func ParseUserRef(text string) (UserRef, error) { return FromIDOrURI[User](text) }

// ParseUserID parses a user id or URI into owned storage.
func ParseUserID(text string) (UserID, error) { return parseID[User](text) }

// MustParseUserID panics if text does not parse.
func MustParseUserID(text string) UserID {
	id, err := ParseUserID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseUserID(%q): %v", text, err))
	}
	return id
}

// Show identifiers.
type (
	ShowRef = Ref[Show]
	ShowID  = ID[Show]
)

// ParseShowRef parses a show id or URI into a zero-copy view.
func ParseShowRef(text string) (ShowRef, error) { return FromIDOrURI[Show](text) }

// ParseShowID parses a show id or URI into owned storage.
func ParseShowID(text string) (ShowID, error) { return parseID[Show](text) }

// MustParseShowID panics if text does not parse.
func MustParseShowID(text string) ShowID {
	id, err := ParseShowID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseShowID(%q): %v", text, err))
	}
	return id
}

// Episode identifiers.
type (
	EpisodeRef = Ref[Episode]
	EpisodeID  = ID[Episode]
)

// ParseEpisodeRef parses an episode id or URI into a zero-copy view.
func ParseEpisodeRef(text string) (EpisodeRef, error) { return FromIDOrURI[Episode](text) }

// ParseEpisodeID parses an episode id or URI into owned storage.
func ParseEpisodeID(text string) (EpisodeID, error) { return parseID[Episode](text) }

// MustParseEpisodeID panics if text does not parse.
func MustParseEpisodeID(text string) EpisodeID {
	id, err := ParseEpisodeID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseEpisodeID(%q): %v", text, err))
	}
	return id
}

// Wildcard identifiers: any resource kind. Parsing one accepts every
// recognized kind name in URI form.
type (
	AnyRef = Ref[Any]
	AnyID  = ID[Any]
)

// ParseAnyRef parses an id or URI of any kind into a zero-copy view.
func ParseAnyRef(text string) (AnyRef, error) { return FromIDOrURI[Any](text) }

// ParseAnyID parses an id or URI of any kind into owned storage.
func ParseAnyID(text string) (AnyID, error) { return parseID[Any](text) }

// MustParseAnyID panics if text does not parse.
func MustParseAnyID(text string) AnyID {
	id, err := ParseAnyID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParseAnyID(%q): %v", text, err))
	}
	return id
}

// Playback-context identifiers: resources a player accepts as a
// listening context. By convention these hold artist, album, playlist,
// or show data (reached through [AsPlayContext]), but parsing enforces
// only URI well-formedness, not the convention.
type (
	PlayContextRef = Ref[PlayContext]
	PlayContextID  = ID[PlayContext]
)

// ParsePlayContextRef parses an id or URI of any kind into a zero-copy
// playback-context view.
func ParsePlayContextRef(text string) (PlayContextRef, error) { return FromIDOrURI[PlayContext](text) }

// ParsePlayContextID parses an id or URI of any kind into an owned
// playback-context identifier.
func ParsePlayContextID(text string) (PlayContextID, error) { return parseID[PlayContext](text) }

// MustParsePlayContextID panics if text does not parse.
func MustParsePlayContextID(text string) PlayContextID {
	id, err := ParsePlayContextID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParsePlayContextID(%q): %v", text, err))
	}
	return id
}

// Playable identifiers: resources playable as media, by convention
// track or episode data reached through [AsPlayable].
type (
	PlayableRef = Ref[Playable]
	PlayableID  = ID[Playable]
)

// ParsePlayableRef parses an id or URI of any kind into a zero-copy
// playable view.
func ParsePlayableRef(text string) (PlayableRef, error) { return FromIDOrURI[Playable](text) }

// ParsePlayableID parses an id or URI of any kind into an owned
// playable identifier.
func ParsePlayableID(text string) (PlayableID, error) { return parseID[Playable](text) }

// MustParsePlayableID panics if text does not parse.
func MustParsePlayableID(text string) PlayableID {
	id, err := ParsePlayableID(text)
	if err != nil {
		panic(fmt.Sprintf("spotifyid.MustParsePlayableID(%q): %v", text, err))
	}
	return id
}
