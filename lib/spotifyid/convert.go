// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

// Widening conversions: using a specific identifier where a broader
// group is expected. Each conversion carries the id characters over
// byte-for-byte, swaps only the type-level tag, and cannot fail: the
// source was validated at construction and nothing is re-checked. The
// conversions are deliberately one-directional: a group identifier has
// discarded its concrete kind, so no narrowing exists.

// AsPlayContext widens a context-capable view (artist, album, playlist,
// show) into a [PlayContextRef].
func AsPlayContext[R PlayContextResource](ref Ref[R]) PlayContextRef {
	return PlayContextRef{value: ref.value}
}

// AsPlayContextID is [AsPlayContext] for owned identifiers; the result
// shares the already-detached storage rather than copying it.
func AsPlayContextID[R PlayContextResource](id ID[R]) PlayContextID {
	return PlayContextID{PlayContextRef{value: id.value}}
}

// AsPlayable widens a media view (track, episode) into a [PlayableRef].
func AsPlayable[R PlayableResource](ref Ref[R]) PlayableRef {
	return PlayableRef{value: ref.value}
}

// AsPlayableID is [AsPlayable] for owned identifiers.
func AsPlayableID[R PlayableResource](id ID[R]) PlayableID {
	return PlayableID{PlayableRef{value: id.value}}
}

// AsAny widens any identifier view, concrete or group, into an
// [AnyRef].
func AsAny[R Resource](ref Ref[R]) AnyRef {
	return AnyRef{value: ref.value}
}

// AsAnyID is [AsAny] for owned identifiers.
func AsAnyID[R Resource](id ID[R]) AnyID {
	return AnyID{AnyRef{value: id.value}}
}
