// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

import "fmt"

// Kind is the resource category an identifier is tagged with. The zero
// value is KindUnknown, the wildcard tag carried by the group identifier
// families ([AnyRef], [PlayContextRef], [PlayableRef]).
type Kind uint8

const (
	// KindUnknown is the wildcard tag. It is never produced by
	// [ParseKind]; it exists so group identifiers have a tag to render.
	KindUnknown Kind = iota
	KindArtist
	KindAlbum
	KindTrack
	KindPlaylist
	KindUser
	KindShow
	KindEpisode
)

// kindNames maps each Kind to its canonical lowercase name, indexed by
// the Kind value. "unknown" appears only in rendered URIs of group
// identifiers and in URI input aimed at a group target.
var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindArtist:   "artist",
	KindAlbum:    "album",
	KindTrack:    "track",
	KindPlaylist: "playlist",
	KindUser:     "user",
	KindShow:     "show",
	KindEpisode:  "episode",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind maps a canonical lowercase name to its concrete Kind. The
// wildcard name "unknown" is not accepted: the wildcard tag is reachable
// only through the group identifier types, never by naming it.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindFromName(s); ok && k != KindUnknown {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("unrecognized resource kind %q (expected artist, album, track, playlist, user, show, or episode)", s)
}

// kindFromName resolves any of the 8 kind names, including "unknown".
// URI parsing uses this wider lookup so that group targets accept every
// recognized name; [ParseKind] filters the wildcard out for callers.
func kindFromName(s string) (Kind, bool) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), true
		}
	}
	return KindUnknown, false
}

// MarshalText returns the canonical kind name. Satisfies
// [encoding.TextMarshaler] so model fields carrying a kind serialize as
// the API's "type" strings.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a concrete kind name via [ParseKind].
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
