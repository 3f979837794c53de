// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// SimplifiedShow is the show object in listings and search results.
type SimplifiedShow struct {
	Description   string           `json:"description"`
	Explicit      bool             `json:"explicit"`
	ExternalURLs  ExternalURLs     `json:"external_urls"`
	ID            spotifyid.ShowID `json:"id"`
	Images        []Image          `json:"images"`
	Languages     []string         `json:"languages"`
	MediaType     string           `json:"media_type"`
	Name          string           `json:"name"`
	Publisher     string           `json:"publisher"`
	TotalEpisodes int              `json:"total_episodes"`
}

// FullShow is the complete show object, including the first page of
// its episodes.
type FullShow struct {
	Copyrights    []Copyright             `json:"copyrights"`
	Description   string                  `json:"description"`
	Explicit      bool                    `json:"explicit"`
	ExternalURLs  ExternalURLs            `json:"external_urls"`
	ID            spotifyid.ShowID        `json:"id"`
	Images        []Image                 `json:"images"`
	Languages     []string                `json:"languages"`
	MediaType     string                  `json:"media_type"`
	Name          string                  `json:"name"`
	Publisher     string                  `json:"publisher"`
	TotalEpisodes int                     `json:"total_episodes"`
	Episodes      Page[SimplifiedEpisode] `json:"episodes"`
}

// SimplifiedEpisode is the episode object in show listings.
type SimplifiedEpisode struct {
	Description  string              `json:"description"`
	DurationMS   int                 `json:"duration_ms"`
	Explicit     bool                `json:"explicit"`
	ExternalURLs ExternalURLs        `json:"external_urls"`
	ID           spotifyid.EpisodeID `json:"id"`
	Images       []Image             `json:"images"`
	Name         string              `json:"name"`
	ReleaseDate  string              `json:"release_date"`
	ResumePoint  *ResumePoint        `json:"resume_point"`
}

// Duration returns the episode length.
func (episode SimplifiedEpisode) Duration() time.Duration {
	return time.Duration(episode.DurationMS) * time.Millisecond
}

// FullEpisode is the complete episode object.
type FullEpisode struct {
	Description  string              `json:"description"`
	DurationMS   int                 `json:"duration_ms"`
	Explicit     bool                `json:"explicit"`
	ExternalURLs ExternalURLs        `json:"external_urls"`
	ID           spotifyid.EpisodeID `json:"id"`
	Images       []Image             `json:"images"`
	Name         string              `json:"name"`
	ReleaseDate  string              `json:"release_date"`
	ResumePoint  *ResumePoint        `json:"resume_point"`
	Show         SimplifiedShow      `json:"show"`
}

// Duration returns the episode length.
func (episode FullEpisode) Duration() time.Duration {
	return time.Duration(episode.DurationMS) * time.Millisecond
}

// ShowOptions controls market filtering for show and episode lookups.
// Shows are market-gated more aggressively than music: a lookup without
// a market and without a user token commonly 404s.
type ShowOptions struct {
	Market Market
}

func (options ShowOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	return query
}

// ShowEpisodesOptions controls paging and market filtering for a show's
// episode listing.
type ShowEpisodesOptions struct {
	Market Market
	Limit  int // results per page (max 50, default 20)
	Offset int
}

func (options ShowEpisodesOptions) queryParams() url.Values {
	query := url.Values{}
	if options.Market != "" {
		query.Set("market", options.Market.String())
	}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}
	if options.Offset > 0 {
		query.Set("offset", strconv.Itoa(options.Offset))
	}
	return query
}

// Show retrieves a single show.
func (client *Client) Show(ctx context.Context, id spotifyid.ShowRef, options ShowOptions) (*FullShow, error) {
	var show FullShow
	path := buildPath("/shows/"+id.ID(), options.queryParams())
	if err := client.get(ctx, path, &show); err != nil {
		return nil, fmt.Errorf("getting show %s: %w", id.ID(), err)
	}
	return &show, nil
}

// Shows retrieves up to 50 shows in one request. The result preserves
// the input order; an unknown id yields a nil entry.
func (client *Client) Shows(ctx context.Context, ids []spotifyid.ShowRef, options ShowOptions) ([]*SimplifiedShow, error) {
	query := options.queryParams()
	query.Set("ids", joinIDs(ids))

	var result struct {
		Shows []*SimplifiedShow `json:"shows"`
	}
	if err := client.get(ctx, buildPath("/shows", query), &result); err != nil {
		return nil, fmt.Errorf("getting %d shows: %w", len(ids), err)
	}
	return result.Shows, nil
}

// ShowEpisodes returns a paginated iterator over a show's episodes.
func (client *Client) ShowEpisodes(ctx context.Context, id spotifyid.ShowRef, options ShowEpisodesOptions) *Pager[SimplifiedEpisode] {
	basePath := "/shows/" + id.ID() + "/episodes"
	return newPager[SimplifiedEpisode](client, buildPath(basePath, options.queryParams()))
}

// Episode retrieves a single episode.
func (client *Client) Episode(ctx context.Context, id spotifyid.EpisodeRef, options ShowOptions) (*FullEpisode, error) {
	var episode FullEpisode
	path := buildPath("/episodes/"+id.ID(), options.queryParams())
	if err := client.get(ctx, path, &episode); err != nil {
		return nil, fmt.Errorf("getting episode %s: %w", id.ID(), err)
	}
	return &episode, nil
}
