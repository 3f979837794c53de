// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
	"github.com/arpeggio-project/arpeggio/lib/spotifyid"
)

// Tab identifies which result list is visible.
type Tab int

const (
	// TabTracks shows track results (the default).
	TabTracks Tab = iota
	// TabArtists shows artist results.
	TabArtists
	// TabAlbums shows album results.
	TabAlbums
	// TabPlaylists shows playlist results.
	TabPlaylists
	// TabShows shows podcast show results.
	TabShows
	// TabEpisodes shows podcast episode results.
	TabEpisodes

	tabCount
)

// String returns the tab's display label.
func (tab Tab) String() string {
	switch tab {
	case TabTracks:
		return "Tracks"
	case TabArtists:
		return "Artists"
	case TabAlbums:
		return "Albums"
	case TabPlaylists:
		return "Playlists"
	case TabShows:
		return "Shows"
	case TabEpisodes:
		return "Episodes"
	}
	return "Unknown"
}

// FocusRegion identifies which element has keyboard focus.
type FocusRegion int

const (
	// FocusSearch means keystrokes go to the search input.
	FocusSearch FocusRegion = iota
	// FocusResults means navigation keys move the result cursor.
	FocusResults
)

// searchLimit is the number of results fetched per kind. One search
// call fills all six tabs; switching tabs never re-queries.
const searchLimit = 20

// noticeFadeDelay is how long action feedback stays in the status line.
const noticeFadeDelay = 3 * time.Second

// Searcher runs catalog searches. *spotify.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, kinds []spotifyid.Kind, options spotify.SearchOptions) (*spotify.SearchResult, error)
}

// Player starts and queues playback on the user's active device.
// *spotify.Client satisfies it when user credentials are loaded. A nil
// Player disables the queue and play actions.
type Player interface {
	Queue(ctx context.Context, item spotify.PlayableURI, deviceID string) error
	Play(ctx context.Context, options spotify.PlayOptions) error
}

// searchResultMsg delivers the outcome of an asynchronous search.
type searchResultMsg struct {
	query  string
	result *spotify.SearchResult
	err    error
}

// actionResultMsg delivers the outcome of an asynchronous queue or
// play call. On success the status line shows "<verb> <title>.".
type actionResultMsg struct {
	verb  string
	title string
	err   error
}

// noticeFadeMsg is sent after a delay to clear the status line notice.
type noticeFadeMsg struct{}

// Options configures optional Model behavior.
type Options struct {
	// Player enables the queue and play actions. Nil leaves the
	// browser read-only.
	Player Player

	// Market scopes search results to one country's catalog.
	Market spotify.Market

	// Query, when set, runs immediately on program start.
	Query string
}

// Model is the top-level bubbletea model for the catalog browser.
type Model struct {
	searcher Searcher
	player   Player
	market   spotify.Market
	theme    Theme
	keys     KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	focus     FocusRegion
	input     textinput.Model
	spin      spinner.Model
	searching bool

	// Search state. query is the last executed query; result holds its
	// response. rows is the displayed list for the active tab.
	query        string
	result       *spotify.SearchResult
	activeTab    Tab
	rows         []Row
	cursor       int
	scrollOffset int

	// Transient status line (action feedback or error). Cleared by
	// noticeFadeMsg after noticeFadeDelay.
	notice      string
	noticeError bool
}

// NewModel creates a Model connected to the given search backend.
func NewModel(searcher Searcher, options Options) Model {
	input := textinput.New()
	input.Prompt = " / "
	input.Placeholder = "search the catalog"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(DefaultTheme.Accent)

	model := Model{
		searcher: searcher,
		player:   options.Player,
		market:   options.Market,
		theme:    DefaultTheme,
		keys:     DefaultKeyMap,
		input:    input,
		spin:     spin,
	}

	if options.Query != "" {
		// Init fires the search; results land with focus on the list.
		model.query = options.Query
		model.input.SetValue(options.Query)
		model.searching = true
		model.focus = FocusResults
	} else {
		model.focus = FocusSearch
		model.input.Focus()
	}

	return model
}

// Init implements tea.Model. When the model was constructed with an
// initial query, the search fires immediately.
func (model Model) Init() tea.Cmd {
	commands := []tea.Cmd{textinput.Blink}
	if model.searching {
		commands = append(commands,
			model.spin.Tick,
			searchCommand(model.searcher, model.query, model.market))
	}
	return tea.Batch(commands...)
}

// searchCommand returns a tea.Cmd that runs the catalog search off the
// update loop and delivers the outcome as a searchResultMsg.
func searchCommand(searcher Searcher, query string, market spotify.Market) tea.Cmd {
	return func() tea.Msg {
		result, err := searcher.Search(context.Background(), query, searchKinds(), spotify.SearchOptions{
			Market: market,
			Limit:  searchLimit,
		})
		return searchResultMsg{query: query, result: result, err: err}
	}
}

// searchKinds returns every searchable kind, in tab order.
func searchKinds() []spotifyid.Kind {
	return []spotifyid.Kind{
		spotifyid.KindTrack,
		spotifyid.KindArtist,
		spotifyid.KindAlbum,
		spotifyid.KindPlaylist,
		spotifyid.KindShow,
		spotifyid.KindEpisode,
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles asynchronous results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.focus == FocusSearch {
			return model.handleSearchKeys(message)
		}
		return model.handleResultKeys(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()

	case searchResultMsg:
		model.searching = false
		if message.err != nil {
			return model, model.showNotice(message.err.Error(), true)
		}
		model.query = message.query
		model.result = message.result
		model.rows = rowsFromResult(message.result, model.activeTab)
		model.cursor = 0
		model.scrollOffset = 0
		// When the active tab came back empty, jump to the first tab
		// that has results so the user sees something immediately.
		if len(model.rows) == 0 {
			if tab, ok := firstPopulatedTab(message.result); ok {
				model.activeTab = tab
				model.rows = rowsFromResult(message.result, tab)
			}
		}

	case actionResultMsg:
		if message.err != nil {
			return model, model.showNotice(message.err.Error(), true)
		}
		return model, model.showNotice(fmt.Sprintf("%s %s.", message.verb, message.title), false)

	case noticeFadeMsg:
		model.notice = ""
		model.noticeError = false

	case spinner.TickMsg:
		if model.searching {
			var cmd tea.Cmd
			model.spin, cmd = model.spin.Update(message)
			return model, cmd
		}
	}

	return model, nil
}

// handleSearchKeys processes keystrokes when the search input has
// focus. Enter runs the search, escape returns to the results without
// searching, everything else edits the input.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEsc:
		model.input.Blur()
		model.focus = FocusResults
		return model, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(model.input.Value())
		if query == "" {
			return model, nil
		}
		model.searching = true
		model.input.Blur()
		model.focus = FocusResults
		return model, tea.Batch(
			model.spin.Tick,
			searchCommand(model.searcher, query, model.market))
	}

	var cmd tea.Cmd
	model.input, cmd = model.input.Update(message)
	return model, cmd
}

// handleResultKeys processes keystrokes when the result list has focus.
func (model Model) handleResultKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusSearch):
		model.focus = FocusSearch
		model.input.Focus()
		return model, textinput.Blink

	case key.Matches(message, model.keys.NextTab):
		model.setTab((model.activeTab + 1) % tabCount)

	case key.Matches(message, model.keys.PrevTab):
		model.setTab((model.activeTab + tabCount - 1) % tabCount)

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.rows)-1 {
			model.cursor++
		}
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.visibleHeight()
		if model.cursor < 0 {
			model.cursor = 0
		}
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.visibleHeight()
		if model.cursor >= len(model.rows) {
			model.cursor = len(model.rows) - 1
		}
		if model.cursor < 0 {
			model.cursor = 0
		}
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.End):
		if len(model.rows) > 0 {
			model.cursor = len(model.rows) - 1
		}
		model.ensureCursorVisible()

	case key.Matches(message, model.keys.Queue):
		return model, model.queueSelected()

	case key.Matches(message, model.keys.Play):
		return model, model.playSelected()

	default:
		// Digits select a tab directly (1 = Tracks ... 6 = Episodes).
		if message.Type == tea.KeyRunes && len(message.Runes) == 1 {
			digit := int(message.Runes[0] - '1')
			if digit >= 0 && digit < int(tabCount) {
				model.setTab(Tab(digit))
			}
		}
	}

	return model, nil
}

// setTab switches the visible result list. Rows rebuild from the held
// search result; no new API call happens.
func (model *Model) setTab(tab Tab) {
	if model.activeTab == tab {
		return
	}
	model.activeTab = tab
	model.rows = rowsFromResult(model.result, tab)
	model.cursor = 0
	model.scrollOffset = 0
}

// selectedRow returns the row under the cursor.
func (model Model) selectedRow() (Row, bool) {
	if model.cursor < 0 || model.cursor >= len(model.rows) {
		return Row{}, false
	}
	return model.rows[model.cursor], true
}

// queueSelected queues the selected track or episode on the user's
// active device. Context kinds (artists, albums, playlists, shows)
// cannot sit in the queue; play starts them instead.
func (model *Model) queueSelected() tea.Cmd {
	row, ok := model.selectedRow()
	if !ok {
		return nil
	}
	if model.player == nil {
		return model.showNotice("not logged in; run 'arpeggio auth login' to queue and play", true)
	}
	if row.Playable.IsZero() {
		return model.showNotice(fmt.Sprintf("%ss cannot be queued; press p to play", row.Kind), true)
	}

	player := model.player
	item := row.Playable
	title := row.Title
	return func() tea.Msg {
		err := player.Queue(context.Background(), item, "")
		return actionResultMsg{verb: "Queued", title: title, err: err}
	}
}

// playSelected starts playback of the selected row. Tracks and
// episodes play as a single-item list; everything else plays as a
// context.
func (model *Model) playSelected() tea.Cmd {
	row, ok := model.selectedRow()
	if !ok {
		return nil
	}
	if model.player == nil {
		return model.showNotice("not logged in; run 'arpeggio auth login' to queue and play", true)
	}

	options := spotify.PlayOptions{}
	if !row.Playable.IsZero() {
		options.URIs = []spotify.PlayableURI{row.Playable}
	} else {
		options.Context = row.Context
	}

	player := model.player
	title := row.Title
	return func() tea.Msg {
		err := player.Play(context.Background(), options)
		return actionResultMsg{verb: "Playing", title: title, err: err}
	}
}

// showNotice sets the transient status line and returns the fade timer.
func (model *Model) showNotice(text string, isError bool) tea.Cmd {
	model.notice = text
	model.noticeError = isError
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// visibleHeight returns the number of result rows that fit between the
// chrome: search bar, tab bar, bottom separator, and help bar.
func (model Model) visibleHeight() int {
	return model.height - 4
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within the
// visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := len(model.rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}
