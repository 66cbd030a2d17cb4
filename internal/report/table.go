package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders r as two go-pretty tables, one row per folder. The group key
// is printed on the first row of each group only.
func Table(r Report, colorize bool) string {
	var b strings.Builder

	dupRows := make([]table.Row, 0)
	for _, group := range r.Duplicates {
		for i, name := range group.RawNames {
			dupRows = append(dupRows, table.Row{firstOnly(i, group.Key), name})
		}
	}
	b.WriteString(renderSection(
		fmt.Sprintf("Duplicates (%d)", len(r.Duplicates)),
		table.Row{"Canonical Key", "Folder"},
		dupRows,
		colorize,
	))
	b.WriteByte('\n')

	simRows := make([]table.Row, 0)
	for _, group := range r.Similar {
		for i, entry := range group.Entries {
			simRows = append(simRows, table.Row{firstOnly(i, group.Key), entry.RawName, entry.CanonicalKey})
		}
	}
	b.WriteString(renderSection(
		fmt.Sprintf("Similar (%d)", len(r.Similar)),
		table.Row{"Group", "Folder", "Canonical Key"},
		simRows,
		colorize,
	))
	b.WriteByte('\n')

	return b.String()
}

func renderSection(title string, headerRow table.Row, rows []table.Row, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if colorize {
		tw.Style().Title.Colors = text.Colors{text.Bold, text.FgBlue}
	}
	tw.SetTitle(title)
	tw.AppendHeader(headerRow)
	if len(rows) == 0 {
		empty := make(table.Row, len(headerRow))
		empty[0] = "(none)"
		for i := 1; i < len(empty); i++ {
			empty[i] = ""
		}
		rows = []table.Row{empty}
	}
	tw.AppendRows(rows)

	columnConfigs := make([]table.ColumnConfig, 0, len(headerRow))
	for i := range headerRow {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func firstOnly(i int, key string) string {
	if i == 0 {
		return key
	}
	return ""
}
