package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hlsmill/internal/ledger"
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range header {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func statusCell(status ledger.Status, colored bool) string {
	if !colored {
		return string(status)
	}
	switch status {
	case ledger.StatusSucceeded:
		return text.FgGreen.Sprint(status)
	case ledger.StatusFailed:
		return text.FgRed.Sprint(status)
	case ledger.StatusRunning, ledger.StatusSessionOpening:
		return text.FgYellow.Sprint(status)
	default:
		return string(status)
	}
}
