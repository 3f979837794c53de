// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/clock"
)

// expiryMargin is how far before the recorded expiry a token is treated
// as expired. Spotify access tokens have a 1-hour TTL; the margin avoids
// races where a token expires between the check and the request.
const expiryMargin = 10 * time.Second

// ScopeList is an ordered set of OAuth scopes. On the wire (both the
// token endpoint and the cache file) scopes travel as a single
// space-joined string; ScopeList marshals to and from that form.
type ScopeList []string

func (scopes ScopeList) String() string {
	return strings.Join(scopes, " ")
}

// Contains reports whether the list includes the given scope.
func (scopes ScopeList) Contains(scope string) bool {
	for _, held := range scopes {
		if held == scope {
			return true
		}
	}
	return false
}

// HasAll reports whether every required scope is present. Used to decide
// whether a cached token can serve a session's scope requirements.
func (scopes ScopeList) HasAll(required ...string) bool {
	for _, scope := range required {
		if !scopes.Contains(scope) {
			return false
		}
	}
	return true
}

func (scopes ScopeList) MarshalJSON() ([]byte, error) {
	return json.Marshal(scopes.String())
}

func (scopes *ScopeList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*scopes = strings.Fields(joined)
	return nil
}

// Token is an OAuth2 access token with its lifecycle metadata. The JSON
// form is the cache-file schema: scope as a space-joined string and the
// absolute expiry rather than the token endpoint's relative expires_in.
type Token struct {
	// AccessToken is the bearer token sent on API requests.
	AccessToken string `json:"access_token"`

	// TokenType is the token's type, always "Bearer" in practice.
	TokenType string `json:"token_type,omitempty"`

	// Scopes are the authorizations granted to the token. Empty for
	// client-credentials tokens.
	Scopes ScopeList `json:"scope,omitempty"`

	// ExpiresAt is the absolute expiry instant, computed from the token
	// endpoint's expires_in at fetch time.
	ExpiresAt time.Time `json:"expires_at"`

	// RefreshToken is the long-lived token used to obtain fresh access
	// tokens in the authorization-code flow. Empty for
	// client-credentials tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Expired reports whether the token is past (or within expiryMargin of)
// its expiry. A token with no recorded expiry counts as expired.
func (token Token) Expired(clk clock.Clock) bool {
	if token.ExpiresAt.IsZero() {
		return true
	}
	return !clk.Now().Before(token.ExpiresAt.Add(-expiryMargin))
}

// Valid reports whether the token has an access token that is not
// expired.
func (token Token) Valid(clk clock.Clock) bool {
	return token.AccessToken != "" && !token.Expired(clk)
}
