// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// fakeSearcher records queries and returns a canned result.
type fakeSearcher struct {
	queries []string
	result  *spotify.SearchResult
	err     error
}

func (searcher *fakeSearcher) Search(_ context.Context, query string, _ []spotifyid.Kind, _ spotify.SearchOptions) (*spotify.SearchResult, error) {
	searcher.queries = append(searcher.queries, query)
	if searcher.err != nil {
		return nil, searcher.err
	}
	return searcher.result, nil
}

// fakePlayer records queue and play calls.
type fakePlayer struct {
	queued []string
	played []spotify.PlayOptions
}

func (player *fakePlayer) Queue(_ context.Context, item spotify.PlayableURI, _ string) error {
	player.queued = append(player.queued, item.String())
	return nil
}

func (player *fakePlayer) Play(_ context.Context, options spotify.PlayOptions) error {
	player.played = append(player.played, options)
	return nil
}

// testResult builds a search result with two tracks and one artist.
func testResult() *spotify.SearchResult {
	return &spotify.SearchResult{
		Tracks: &spotify.Page[spotify.FullTrack]{
			Items: []spotify.FullTrack{
				{
					ID:         spotifyid.MustParseTrackID("4u7EnebtmKWzUH433cf5Qv"),
					Name:       "Bohemian Rhapsody",
					Artists:    []spotify.SimplifiedArtist{{Name: "Queen"}},
					Album:      spotify.SimplifiedAlbum{Name: "A Night at the Opera", ReleaseDate: "1975-11-21"},
					DurationMS: 354320,
					Popularity: 87,
				},
				{
					ID:         spotifyid.MustParseTrackID("7tFiyTwD0nx5a1eklYtX2J"),
					Name:       "Don't Stop Me Now",
					Artists:    []spotify.SimplifiedArtist{{Name: "Queen"}},
					Album:      spotify.SimplifiedAlbum{Name: "Jazz", ReleaseDate: "1978-11-10"},
					DurationMS: 209413,
					Popularity: 83,
				},
			},
			Total: 2,
		},
		Artists: &spotify.Page[spotify.FullArtist]{
			Items: []spotify.FullArtist{
				{
					ID:         spotifyid.MustParseArtistID("1dfeR4HaWDbWqFHLkxsg1d"),
					Name:       "Queen",
					Genres:     []string{"rock", "glam rock"},
					Followers:  spotify.Followers{Total: 41000000},
					Popularity: 84,
				},
			},
			Total: 1,
		},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// sizedModel builds a model and applies terminal dimensions.
func sizedModel(t *testing.T, searcher Searcher, options Options) Model {
	t.Helper()
	model := NewModel(searcher, options)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model)
}

// searchedModel drives the full search flow: types "queen" into the
// focused input, presses enter, and delivers the given result. Focus
// ends on the result list, the way it does in a live session.
func searchedModel(t *testing.T, options Options, result *spotify.SearchResult) Model {
	t.Helper()
	model := sizedModel(t, &fakeSearcher{result: result}, options)
	for _, r := range "queen" {
		updated, _ := model.Update(keyRune(r))
		model = updated.(Model)
	}
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("enter should return a search command")
	}
	updated, _ = model.Update(searchResultMsg{query: "queen", result: result})
	return updated.(Model)
}

func TestNewModelFocusesSearch(t *testing.T) {
	model := NewModel(&fakeSearcher{}, Options{})

	if model.focus != FocusSearch {
		t.Errorf("initial focus = %d, want FocusSearch", model.focus)
	}
	if model.searching {
		t.Error("model should not be searching before a query is entered")
	}
}

func TestNewModelWithInitialQuery(t *testing.T) {
	model := NewModel(&fakeSearcher{}, Options{Query: "queen"})

	if !model.searching {
		t.Error("initial query should start in the searching state")
	}
	if model.focus != FocusResults {
		t.Errorf("focus = %d, want FocusResults", model.focus)
	}
	if model.input.Value() != "queen" {
		t.Errorf("input value = %q, want %q", model.input.Value(), "queen")
	}
	if model.Init() == nil {
		t.Error("Init should return the initial search command")
	}
}

func TestSearchCommandDeliversResult(t *testing.T) {
	searcher := &fakeSearcher{result: testResult()}

	message := searchCommand(searcher, "queen", "")()

	result, ok := message.(searchResultMsg)
	if !ok {
		t.Fatalf("message type = %T, want searchResultMsg", message)
	}
	if result.err != nil {
		t.Fatalf("unexpected error: %v", result.err)
	}
	if result.query != "queen" {
		t.Errorf("query = %q, want %q", result.query, "queen")
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != "queen" {
		t.Errorf("recorded queries = %v, want [queen]", searcher.queries)
	}
}

func TestEnterRunsSearch(t *testing.T) {
	searcher := &fakeSearcher{result: testResult()}
	model := sizedModel(t, searcher, Options{})

	for _, r := range "queen" {
		updated, _ := model.Update(keyRune(r))
		model = updated.(Model)
	}
	if model.input.Value() != "queen" {
		t.Fatalf("input value = %q, want %q", model.input.Value(), "queen")
	}

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if cmd == nil {
		t.Fatal("enter should return a search command")
	}
	if !model.searching {
		t.Error("model should be searching after enter")
	}
	if model.focus != FocusResults {
		t.Errorf("focus = %d, want FocusResults", model.focus)
	}
}

func TestEnterIgnoresEmptyQuery(t *testing.T) {
	model := sizedModel(t, &fakeSearcher{}, Options{})

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if cmd != nil {
		t.Error("empty query should not produce a search command")
	}
	if model.searching {
		t.Error("model should not be searching")
	}
}

func TestSearchResultBuildsRows(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	if model.searching {
		t.Error("searching should clear when the result arrives")
	}
	if model.activeTab != TabTracks {
		t.Errorf("active tab = %v, want TabTracks", model.activeTab)
	}
	if len(model.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(model.rows))
	}
	if model.rows[0].Title != "Bohemian Rhapsody" {
		t.Errorf("first row title = %q", model.rows[0].Title)
	}
}

func TestSearchErrorShowsNotice(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	updated, cmd := model.Update(searchResultMsg{query: "queen", err: errors.New("rate limited, retry later")})
	model = updated.(Model)

	if cmd == nil {
		t.Error("error notice should schedule a fade")
	}
	if !strings.Contains(model.notice, "rate limited") {
		t.Errorf("notice = %q, want the search error", model.notice)
	}
	if !model.noticeError {
		t.Error("noticeError should be set")
	}
	if len(model.rows) != 2 {
		t.Error("a failed search should keep the previous results")
	}

	updated, _ = model.Update(noticeFadeMsg{})
	model = updated.(Model)
	if model.notice != "" {
		t.Errorf("notice after fade = %q, want empty", model.notice)
	}
}

func TestEmptyActiveTabJumpsToPopulated(t *testing.T) {
	artistsOnly := &spotify.SearchResult{
		Artists: testResult().Artists,
	}
	model := searchedModel(t, Options{}, artistsOnly)

	if model.activeTab != TabArtists {
		t.Errorf("active tab = %v, want TabArtists", model.activeTab)
	}
	if len(model.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(model.rows))
	}
	if model.rows[0].Title != "Queen" {
		t.Errorf("row title = %q, want Queen", model.rows[0].Title)
	}
}

func TestTabSwitching(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	updated, _ := model.Update(keyRune('l'))
	model = updated.(Model)
	if model.activeTab != TabArtists {
		t.Errorf("after l: tab = %v, want TabArtists", model.activeTab)
	}
	if len(model.rows) != 1 {
		t.Errorf("after l: rows = %d, want 1", len(model.rows))
	}

	updated, _ = model.Update(keyRune('h'))
	model = updated.(Model)
	if model.activeTab != TabTracks {
		t.Errorf("after h: tab = %v, want TabTracks", model.activeTab)
	}

	// Digit keys select tabs directly.
	updated, _ = model.Update(keyRune('2'))
	model = updated.(Model)
	if model.activeTab != TabArtists {
		t.Errorf("after 2: tab = %v, want TabArtists", model.activeTab)
	}

	// Cycling left from the first tab wraps to the last.
	updated, _ = model.Update(keyRune('1'))
	model = updated.(Model)
	updated, _ = model.Update(keyRune('h'))
	model = updated.(Model)
	if model.activeTab != TabEpisodes {
		t.Errorf("after wrap: tab = %v, want TabEpisodes", model.activeTab)
	}
}

func TestListNavigation(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	updated, _ := model.Update(keyRune('j'))
	model = updated.(Model)
	if model.cursor != 1 {
		t.Errorf("after j: cursor = %d, want 1", model.cursor)
	}

	// Cursor clamps at the end of the list.
	updated, _ = model.Update(keyRune('j'))
	model = updated.(Model)
	if model.cursor != 1 {
		t.Errorf("after second j: cursor = %d, want 1", model.cursor)
	}

	updated, _ = model.Update(keyRune('k'))
	model = updated.(Model)
	if model.cursor != 0 {
		t.Errorf("after k: cursor = %d, want 0", model.cursor)
	}

	updated, _ = model.Update(keyRune('G'))
	model = updated.(Model)
	if model.cursor != 1 {
		t.Errorf("after G: cursor = %d, want 1", model.cursor)
	}

	updated, _ = model.Update(keyRune('g'))
	model = updated.(Model)
	if model.cursor != 0 {
		t.Errorf("after g: cursor = %d, want 0", model.cursor)
	}
}

func TestQueueSelectedTrack(t *testing.T) {
	player := &fakePlayer{}
	model := searchedModel(t, Options{Player: player}, testResult())

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("enter on a track should return a queue command")
	}

	message := cmd()
	action, ok := message.(actionResultMsg)
	if !ok {
		t.Fatalf("message type = %T, want actionResultMsg", message)
	}
	if action.err != nil {
		t.Fatalf("unexpected error: %v", action.err)
	}
	if action.verb != "Queued" || action.title != "Bohemian Rhapsody" {
		t.Errorf("action = %q %q", action.verb, action.title)
	}
	if len(player.queued) != 1 || player.queued[0] != "spotify:track:4u7EnebtmKWzUH433cf5Qv" {
		t.Errorf("queued = %v", player.queued)
	}

	updated, _ = model.Update(action)
	model = updated.(Model)
	if !strings.Contains(model.notice, "Queued Bohemian Rhapsody") {
		t.Errorf("notice = %q", model.notice)
	}
	if model.noticeError {
		t.Error("success notice should not be an error")
	}
}

func TestQueueRejectsContextKinds(t *testing.T) {
	player := &fakePlayer{}
	model := searchedModel(t, Options{Player: player}, testResult())

	updated, _ := model.Update(keyRune('2'))
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if len(player.queued) != 0 {
		t.Errorf("queued = %v, want none", player.queued)
	}
	if !strings.Contains(model.notice, "cannot be queued") {
		t.Errorf("notice = %q", model.notice)
	}
}

func TestPlayTrackUsesURIList(t *testing.T) {
	player := &fakePlayer{}
	model := searchedModel(t, Options{Player: player}, testResult())

	_, cmd := model.Update(keyRune('p'))
	if cmd == nil {
		t.Fatal("p on a track should return a play command")
	}
	cmd()

	if len(player.played) != 1 {
		t.Fatalf("played = %d calls, want 1", len(player.played))
	}
	options := player.played[0]
	if !options.Context.IsZero() {
		t.Errorf("context = %q, want zero", options.Context)
	}
	if len(options.URIs) != 1 || options.URIs[0].String() != "spotify:track:4u7EnebtmKWzUH433cf5Qv" {
		t.Errorf("URIs = %v", options.URIs)
	}
}

func TestPlayArtistUsesContext(t *testing.T) {
	player := &fakePlayer{}
	model := searchedModel(t, Options{Player: player}, testResult())

	updated, _ := model.Update(keyRune('2'))
	model = updated.(Model)

	_, cmd := model.Update(keyRune('p'))
	if cmd == nil {
		t.Fatal("p on an artist should return a play command")
	}
	cmd()

	if len(player.played) != 1 {
		t.Fatalf("played = %d calls, want 1", len(player.played))
	}
	options := player.played[0]
	if options.Context.String() != "spotify:artist:1dfeR4HaWDbWqFHLkxsg1d" {
		t.Errorf("context = %q", options.Context)
	}
	if len(options.URIs) != 0 {
		t.Errorf("URIs = %v, want none", options.URIs)
	}
}

func TestActionsWithoutPlayerShowLoginHint(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if !strings.Contains(model.notice, "not logged in") {
		t.Errorf("notice = %q, want a login hint", model.notice)
	}
}

func TestSlashFocusesSearch(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	updated, _ := model.Update(keyRune('/'))
	model = updated.(Model)
	if model.focus != FocusSearch {
		t.Errorf("focus = %d, want FocusSearch", model.focus)
	}

	// Escape returns to the results without searching.
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	if model.focus != FocusResults {
		t.Errorf("focus after esc = %d, want FocusResults", model.focus)
	}
	if cmd != nil {
		t.Error("esc should not run a command")
	}
}

func TestQuitFromResults(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	_, cmd := model.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if message := cmd(); message != tea.Msg(tea.QuitMsg{}) {
		t.Errorf("message = %v, want tea.QuitMsg", message)
	}
}

func TestViewRendersResults(t *testing.T) {
	model := searchedModel(t, Options{}, testResult())

	view := model.View()

	if !strings.Contains(view, "Bohemian Rhapsody") {
		t.Error("view should contain the first track title")
	}
	if !strings.Contains(view, "Tracks 2") {
		t.Error("view should show the track count in the tab bar")
	}
	if !strings.Contains(view, "A Night at the Opera") {
		t.Error("view should show the selected track's album in the detail pane")
	}
	if !strings.Contains(view, "log in to queue and play") {
		t.Error("view should hint at login when no player is configured")
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	model := NewModel(&fakeSearcher{}, Options{})

	if view := model.View(); view != "Loading..." {
		t.Errorf("view = %q, want Loading...", view)
	}
}
