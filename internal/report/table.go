package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders r as terminal tables: one per sheet, the index summary
// line and, when present, the per-response listing.
func WriteTable(w io.Writer, r Report) error {
	for _, sh := range r.Sheets {
		if _, err := fmt.Fprintf(w, "%s\n", strings.ToUpper(sh.Name)); err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Cell", "Variable", "Value"})
		for _, c := range sh.Cells {
			t.AppendRow(table.Row{c.Ref, c.Label, c.Value})
		}
		t.Render()
	}

	flags := make([]string, len(r.Flags))
	for i, f := range r.Flags {
		flags[i] = f.String()
	}
	if _, err := fmt.Fprintln(w, strings.Join(flags, "  ")); err != nil {
		return err
	}

	if len(r.Responses) == 0 {
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Card", "N", "Loc", "DQ", "Determinants", "FQ", "Contents", "P", "Z", "Special"})
	for _, row := range r.Responses {
		t.AppendRow(table.Row{
			row.Card, row.N, row.Location, row.DevQual, row.Determinants,
			row.FormQual, row.Content, row.Popular, row.Z, row.Special,
		})
	}
	t.Render()
	_, err := fmt.Fprintf(w, "(%d responses)\n", len(r.Responses))
	return err
}
