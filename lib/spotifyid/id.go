// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

import "strings"

// Ref is a validated identifier view for the resource kind R. It holds
// no storage of its own: a Ref parsed from caller text shares the backing
// array of that text, which stays reachable for as long as the Ref does.
// Use [Ref.Clone] to detach into an owned [ID] when the identifier
// outlives its source buffer.
//
// The zero value is invalid; every usable Ref comes from one of the
// parsing functions or from a widening conversion. Refs are immutable
// and comparable: two Refs of the same kind are equal exactly when
// their id characters are equal.
type Ref[R Resource] struct {
	value string
}

// ID is the owning counterpart of [Ref]: same kind tag, same validated
// characters, but storage detached from any parse input. The embedded
// Ref field is the zero-cost view of an ID; every Ref method is promoted.
//
// ID is the right shape for long-lived storage: struct fields, map
// keys, values decoded from API responses. Only ID implements
// [encoding.TextUnmarshaler], so models round-trip through the owned
// form and never alias a decoder's scratch buffer.
type ID[R Resource] struct {
	Ref[R]
}

// ID returns the validated identifier characters.
func (r Ref[R]) ID() string { return r.value }

// Kind returns the tag kind of this identifier type. Group identifiers
// report [KindUnknown] regardless of what kind they were widened from.
func (r Ref[R]) Kind() Kind {
	var tag R
	return tag.kind()
}

// URI returns the canonical URI: spotify:{kind}:{id}. Group identifiers
// render the wildcard kind name.
func (r Ref[R]) URI() string {
	return "spotify:" + r.Kind().String() + ":" + r.value
}

// URL returns the open.spotify.com link for this identifier.
func (r Ref[R]) URL() string {
	return "https://open.spotify.com/" + r.Kind().String() + "/" + r.value
}

// String returns the URI form, satisfying fmt.Stringer.
func (r Ref[R]) String() string { return r.URI() }

// IsZero reports whether this is the invalid zero value.
func (r Ref[R]) IsZero() bool { return r.value == "" }

// Clone copies the identifier characters into fresh storage, detaching
// the result from whatever buffer this view was parsed out of.
func (r Ref[R]) Clone() ID[R] {
	return ID[R]{Ref[R]{value: strings.Clone(r.value)}}
}

// MarshalText returns the raw id characters, the form API payloads
// carry. Promoted to [ID], so both representations serialize alike.
func (r Ref[R]) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

// UnmarshalText parses a bare id, validating it like [FromID]. Defined
// only on the owned form: conversion from the decoder's []byte already
// detaches the storage, so no extra copy happens here.
func (id *ID[R]) UnmarshalText(text []byte) error {
	value := string(text)
	if err := validateID(value); err != nil {
		return err
	}
	id.value = value
	return nil
}
