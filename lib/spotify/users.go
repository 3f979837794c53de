// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// PublicUser is the user reference visible on playlists and follows.
type PublicUser struct {
	DisplayName  string           `json:"display_name"`
	ExternalURLs ExternalURLs     `json:"external_urls"`
	Followers    Followers        `json:"followers"`
	ID           spotifyid.UserID `json:"id"`
	Images       []Image          `json:"images"`
}

// PrivateUser is the current user's full profile. Country, Email, and
// Product require the user-read-private / user-read-email scopes and
// are empty without them.
type PrivateUser struct {
	Country      string           `json:"country"`
	DisplayName  string           `json:"display_name"`
	Email        string           `json:"email"`
	ExternalURLs ExternalURLs     `json:"external_urls"`
	Followers    Followers        `json:"followers"`
	ID           spotifyid.UserID `json:"id"`
	Images       []Image          `json:"images"`
	Product      string           `json:"product"` // "premium", "free", "open"
}

// CurrentUser retrieves the profile of the user the access token
// belongs to.
func (client *Client) CurrentUser(ctx context.Context) (*PrivateUser, error) {
	var user PrivateUser
	if err := client.get(ctx, "/me", &user); err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}
	return &user, nil
}

// User retrieves a user's public profile.
func (client *Client) User(ctx context.Context, id spotifyid.UserRef) (*PublicUser, error) {
	var user PublicUser
	if err := client.get(ctx, "/users/"+id.ID(), &user); err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id.ID(), err)
	}
	return &user, nil
}
