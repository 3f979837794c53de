// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Alignment controls column alignment in RenderTable output.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderTable renders headers and rows as a rounded-border table. aligns may
// be nil (all columns left-aligned) or one entry per column; right-aligned
// columns keep a left-aligned header.
func RenderTable(headers []string, rows [][]string, aligns []Alignment) string {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleRounded)

	headerRow := make(table.Row, len(headers))
	for i, header := range headers {
		headerRow[i] = header
	}
	writer.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		writer.AppendRow(tableRow)
	}

	if len(aligns) > 0 {
		configs := make([]table.ColumnConfig, 0, len(aligns))
		for i, align := range aligns {
			if align == AlignRight {
				configs = append(configs, table.ColumnConfig{
					Number:      i + 1,
					Align:       text.AlignRight,
					AlignHeader: text.AlignLeft,
				})
			}
		}
		writer.SetColumnConfigs(configs)
	}

	return writer.Render()
}
