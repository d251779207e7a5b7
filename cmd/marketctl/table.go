package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

type visualTable struct {
	header []string
	rows   [][]string
	colors [][]tablewriter.Colors
}

func newVisualTable(header ...string) *visualTable {
	return &visualTable{header: header}
}

// addRow appends a row; colors may be nil or carry one entry per column.
func (v *visualTable) addRow(row []string, colors []tablewriter.Colors) {
	v.rows = append(v.rows, row)
	v.colors = append(v.colors, colors)
}

func (v *visualTable) render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	for i, row := range v.rows {
		if v.colors[i] != nil {
			table.Rich(row, v.colors[i])
		} else {
			table.Append(row)
		}
	}

	table.SetHeader(v.header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.Render()
}
