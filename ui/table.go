package ui

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints rows under headers. Every list screen goes through
// here so lists look the same everywhere.
func RenderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
