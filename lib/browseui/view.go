// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// detailLabelWidth is the fixed width of the label column in the
// detail pane.
const detailLabelWidth = 12

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, model.renderSearchBar())
	sections = append(sections, model.renderTabBar())

	listView := model.renderListPane()
	divider := model.renderDivider()
	detailView := model.renderDetailPane()
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView))

	separator := lipgloss.NewStyle().
		Foreground(model.theme.Border).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderSearchBar renders the top line: the search input, with the
// spinner appended while a search is in flight.
func (model Model) renderSearchBar() string {
	bar := model.input.View()
	if model.searching {
		bar += " " + model.spin.View()
	}
	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(bar)
}

// renderTabBar renders the six kind tabs with their fetched result
// counts. The active tab is highlighted; empty tabs are faint.
func (model Model) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().Foreground(model.theme.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	emptyStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	parts := make([]string, 0, int(tabCount))
	for tab := Tab(0); tab < tabCount; tab++ {
		label := tab.String()
		count := resultCount(model.result, tab)
		if model.result != nil {
			label = fmt.Sprintf("%s %d", label, count)
		}
		switch {
		case tab == model.activeTab:
			parts = append(parts, activeStyle.Render(label))
		case model.result != nil && count == 0:
			parts = append(parts, emptyStyle.Render(label))
		default:
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	separator := lipgloss.NewStyle().Foreground(model.theme.Border).Render(" · ")
	row := " " + strings.Join(parts, separator)
	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(row)
}

// listWidth returns the width of the results pane. The split is fixed
// at just under half the terminal; the detail pane gets the rest.
func (model Model) listWidth() int {
	return int(float64(model.width) * 0.45)
}

// renderListPane renders the visible slice of result rows.
func (model Model) renderListPane() string {
	listWidth := model.listWidth()
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.rows); index++ {
		rows = append(rows, model.renderRow(model.rows[index], listWidth, index == model.cursor))
	}
	if len(model.rows) == 0 {
		empty := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		rows = append(rows, empty.Render(" "+model.emptyText()))
	}
	for len(rows) < visible {
		rows = append(rows, "")
	}

	return lipgloss.NewStyle().
		Width(listWidth).
		Height(visible).
		MaxWidth(listWidth).
		Render(strings.Join(rows, "\n"))
}

// emptyText explains an empty list: no search yet, search in flight,
// or a tab with no results.
func (model Model) emptyText() string {
	switch {
	case model.searching:
		return "Searching..."
	case model.result == nil:
		return "Type a query and press enter to search."
	default:
		return "No results on this tab."
	}
}

// renderRow renders one result line: the title, then the subtitle in
// faint text when there is room for it.
func (model Model) renderRow(row Row, width int, selected bool) string {
	available := width - 1
	title := truncate(row.Title, available)
	subtitle := ""
	remaining := available - lipgloss.Width(title) - 2
	if row.Subtitle != "" && remaining > 8 {
		subtitle = truncate(row.Subtitle, remaining)
	}

	if selected {
		style := lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground)
		line := " " + title
		if subtitle != "" {
			line += "  " + subtitle
		}
		return style.Width(width).MaxWidth(width).Render(line)
	}

	line := " " + lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(title)
	if subtitle != "" {
		line += "  " + lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(subtitle)
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
}

// renderDivider renders the vertical line between the list and detail
// panes.
func (model Model) renderDivider() string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.Border).
		Width(1).
		Height(visible).
		Render(strings.Join(lines, "\n"))
}

// renderDetailPane renders the label/value fields of the selected row.
func (model Model) renderDetailPane() string {
	detailWidth := model.width - model.listWidth() - 1
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	paneStyle := lipgloss.NewStyle().
		Width(detailWidth).
		Height(visible).
		MaxWidth(detailWidth)

	row, ok := model.selectedRow()
	if !ok {
		return paneStyle.Render("")
	}

	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	kindStyle := lipgloss.NewStyle().Foreground(model.theme.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText).Width(detailLabelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	lines := []string{
		" " + titleStyle.Render(truncate(row.Title, detailWidth-2)),
		" " + kindStyle.Render(row.Kind.String()),
		"",
	}
	valueWidth := detailWidth - detailLabelWidth - 2
	for _, field := range row.Detail {
		if field.Value == "" {
			continue
		}
		lines = append(lines, " "+labelStyle.Render(field.Label)+valueStyle.Render(truncate(field.Value, valueWidth)))
	}

	return paneStyle.Render(strings.Join(lines, "\n"))
}

// renderHelp renders the bottom line: a transient action notice when
// one is active, the key help otherwise.
func (model Model) renderHelp() string {
	lineStyle := lipgloss.NewStyle().Width(model.width).MaxWidth(model.width)

	if model.notice != "" {
		color := model.theme.Accent
		if model.noticeError {
			color = model.theme.ErrorText
		}
		return lineStyle.Foreground(color).Render(" " + model.notice)
	}

	help := " / search · h/l tabs · j/k move · enter queue · p play · q quit"
	if model.player == nil {
		help = " / search · h/l tabs · j/k move · q quit (log in to queue and play)"
	}
	return lineStyle.Foreground(model.theme.HelpText).Render(help)
}

// truncate shortens text to maxWidth visual columns, ending with an
// ellipsis when anything was cut.
func truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		if lipgloss.Width(string(runes[:length])) <= maxWidth-1 {
			return string(runes[:length]) + "…"
		}
	}
	return ""
}
