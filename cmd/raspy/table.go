package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/raspyfmt/raspy/parser/ras"
)

// showStore prints every list in the store as a table, one per list, in
// name order.
func showStore(store ras.Store) {
	for _, name := range store.Lists() {
		records := store[name]
		fmt.Printf("%s (%d records)\n", name, len(records))
		fmt.Println(renderList(records))
		fmt.Println()
	}
}

func renderList(records []ras.Record) string {
	columns := 0
	for _, rec := range records {
		if len(rec) > columns {
			columns = len(rec)
		}
	}

	headers := make([]string, columns+1)
	headers[0] = "#"
	for i := 1; i <= columns; i++ {
		headers[i] = fmt.Sprintf("field %d", i-1)
	}

	rows := make([][]string, len(records))
	aligns := columnAlignments(records, columns)
	for i, rec := range records {
		row := make([]string, len(rec)+1)
		row[0] = fmt.Sprintf("%d", i)
		for j, v := range rec {
			row[j+1] = v.String()
		}
		rows[i] = row
	}

	return renderTable(headers, rows, aligns)
}

// columnAlignments right-aligns columns whose values are all numeric.
func columnAlignments(records []ras.Record, columns int) []columnAlignment {
	aligns := make([]columnAlignment, columns+1)
	aligns[0] = alignRight
	for col := 0; col < columns; col++ {
		numeric := true
		for _, rec := range records {
			if col >= len(rec) {
				continue
			}
			if k := rec[col].Kind; k != ras.Int && k != ras.Float {
				numeric = false
				break
			}
		}
		if numeric {
			aligns[col+1] = alignRight
		}
	}
	return aligns
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if stdoutIsTerminal() {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
