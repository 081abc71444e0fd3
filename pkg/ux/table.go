// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DefaultTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.Style().Title.Align = text.AlignCenter
	t.Style().Title.Format = text.FormatUpper
	t.Style().Options.SeparateRows = true
	t.SetTitle(title)
	if header != nil {
		t.AppendHeader(header)
	}
	return t
}

// PrintTable renders [rows] under [header] to the user
func (ul *UserLog) PrintTable(title string, header table.Row, rows []table.Row) {
	t := DefaultTable(title, header)
	t.AppendRows(rows)
	ul.PrintToUser("%s", t.Render())
}
