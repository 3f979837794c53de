// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotifyid

import (
	"errors"
	"fmt"
	"strings"
)

// The four parse failures. All are terminal validation errors (they
// describe malformed caller input, never a transient condition), and
// parsing wraps them with the offending text, so match with [errors.Is].
var (
	// ErrInvalidPrefix: the text does not begin with "spotify:" or
	// "spotify/". This is the only failure [FromIDOrURI] treats as
	// "not a URI at all" before falling back to bare-id parsing.
	ErrInvalidPrefix = errors.New("invalid prefix (expected spotify: or spotify/)")

	// ErrInvalidFormat: the URI separator never recurs after the
	// prefix, so the text cannot be split into kind and id segments.
	// Mixed-separator URIs fail here.
	ErrInvalidFormat = errors.New("invalid format (expected spotify:{kind}:{id} or spotify/{kind}/{id})")

	// ErrInvalidType: the kind segment is not a recognized kind name,
	// or names a kind other than the one the caller asked for.
	ErrInvalidType = errors.New("invalid resource kind")

	// ErrInvalidID: the id is empty or contains a character outside
	// ASCII alphanumerics.
	ErrInvalidID = errors.New("invalid id (expected non-empty ASCII alphanumerics)")
)

// alphanumeric is the set of bytes permitted in an id.
var alphanumeric [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		alphanumeric[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		alphanumeric[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		alphanumeric[c] = true
	}
}

// validateID enforces the id predicate: non-empty, ASCII alphanumeric.
// The empty string is rejected deliberately: "every character is
// alphanumeric" is vacuously true for it, but an empty id names nothing
// and renders unusable URIs.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("empty id: %w", ErrInvalidID)
	}
	for i := 0; i < len(id); i++ {
		if !alphanumeric[id[i]] {
			return fmt.Errorf("id %q has character %q at position %d: %w", id, id[i], i, ErrInvalidID)
		}
	}
	return nil
}

// splitURI performs the kind-agnostic part of URI parsing: prefix strip,
// separator detection, last-separator split, and kind-name lookup. The
// id segment is returned unvalidated; callers check the kind against
// their target before spending time on it.
//
// The split is on the LAST occurrence of the separator. An id can never
// contain the separator (it is alphanumeric), so first and last agree on
// well-formed input; last is the documented behavior for everything
// else.
func splitURI(uri string) (kind Kind, id string, err error) {
	rest, ok := strings.CutPrefix(uri, "spotify")
	if !ok {
		return KindUnknown, "", fmt.Errorf("uri %q: %w", uri, ErrInvalidPrefix)
	}
	if rest == "" || (rest[0] != ':' && rest[0] != '/') {
		return KindUnknown, "", fmt.Errorf("uri %q: %w", uri, ErrInvalidPrefix)
	}
	separator := rest[0]
	rest = rest[1:]

	cut := strings.LastIndexByte(rest, separator)
	if cut < 0 {
		return KindUnknown, "", fmt.Errorf("uri %q: %w", uri, ErrInvalidFormat)
	}

	kindName := rest[:cut]
	kind, ok = kindFromName(kindName)
	if !ok {
		return KindUnknown, "", fmt.Errorf("uri %q has kind %q: %w", uri, kindName, ErrInvalidType)
	}
	return kind, rest[cut+1:], nil
}

// FromID parses a bare id into a view tagged with the caller's chosen
// kind. Bare ids carry no kind information; the tag is asserted by the
// type parameter, not checked against the text. Fails with
// [ErrInvalidID] only.
func FromID[R Resource](text string) (Ref[R], error) {
	if err := validateID(text); err != nil {
		return Ref[R]{}, err
	}
	return Ref[R]{value: text}, nil
}

// FromURI parses one of the two URI spellings into a view of kind R.
// A concrete target kind must match the URI's kind segment exactly; a
// group target (Any, PlayContext, Playable) accepts any recognized kind
// name, including the literal "unknown". Fails with [ErrInvalidPrefix],
// [ErrInvalidFormat], [ErrInvalidType], or [ErrInvalidID].
func FromURI[R Resource](text string) (Ref[R], error) {
	kind, id, err := splitURI(text)
	if err != nil {
		return Ref[R]{}, err
	}
	var tag R
	if target := tag.kind(); target != KindUnknown && kind != target {
		return Ref[R]{}, fmt.Errorf("uri %q has kind %q, expected %q: %w", text, kind, target, ErrInvalidType)
	}
	if err := validateID(id); err != nil {
		return Ref[R]{}, err
	}
	return Ref[R]{value: id}, nil
}

// FromIDOrURI parses text that may be either a bare id or a URI. It
// tries [FromURI] first and falls back to [FromID] only when the text
// was not URI-shaped at all ([ErrInvalidPrefix]); a malformed URI
// (wrong kind or a bad id) reports its real failure instead
// of being reinterpreted as a (hopeless) bare id.
func FromIDOrURI[R Resource](text string) (Ref[R], error) {
	ref, err := FromURI[R](text)
	if err == nil {
		return ref, nil
	}
	if errors.Is(err, ErrInvalidPrefix) {
		return FromID[R](text)
	}
	return Ref[R]{}, err
}

// Identify parses text as an id or URI of any kind and reports the
// concrete kind the text itself names: the URI's kind segment, or
// [KindUnknown] for a bare id, which names none. This is the entry
// point for code that dispatches on the kind at run time; the returned
// [AnyRef] has already discarded it.
func Identify(text string) (Kind, AnyRef, error) {
	kind, id, err := splitURI(text)
	switch {
	case err == nil:
		if err := validateID(id); err != nil {
			return KindUnknown, AnyRef{}, err
		}
		return kind, Ref[Any]{value: id}, nil
	case errors.Is(err, ErrInvalidPrefix):
		if err := validateID(text); err != nil {
			return KindUnknown, AnyRef{}, err
		}
		return KindUnknown, Ref[Any]{value: text}, nil
	default:
		return KindUnknown, AnyRef{}, err
	}
}
