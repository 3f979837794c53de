// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the browser TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	Accent           lipgloss.Color
	Border           lipgloss.Color
	HelpText         lipgloss.Color
	ErrorText        lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	Accent:           lipgloss.Color("35"), // green: active tab, notices, spinner
	Border:           lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	ErrorText:        lipgloss.Color("196"),
}
