// Package export renders a datatable.Table as plain text for non-interactive use.
package export

import (
	"fmt"
	"io"

	"uiforge/internal/datatable"
	"uiforge/internal/ui/textutil"

	"github.com/olekukonko/tablewriter"
)

// LoadingText is written instead of rows while the table is loading.
const LoadingText = "Loading..."

// Write renders t's derived view to w. Loading and empty tables produce a
// single status line; rows go through tablewriter with styling stripped.
func Write(w io.Writer, t *datatable.Table) error {
	switch t.Mode() {
	case datatable.ModeLoading:
		_, err := fmt.Fprintln(w, LoadingText)
		return err
	case datatable.ModeEmpty:
		_, err := fmt.Fprintf(w, "No Data: %s\n", t.EmptyMessage())
		return err
	}

	cols := t.Columns()
	header := make([]string, 0, len(cols)+1)
	if t.Selectable() {
		header = append(header, "Selected")
	}
	for _, col := range cols {
		header = append(header, col.Title)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for i, row := range t.View() {
		cells := make([]string, 0, len(header))
		if t.Selectable() {
			mark := ""
			if t.IsSelected(t.Key(row)) {
				mark = "x"
			}
			cells = append(cells, mark)
		}
		for _, col := range cols {
			cells = append(cells, textutil.Strip(t.CellText(col, row, i)))
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("export: append row %d: %w", i, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("export: render: %w", err)
	}
	return nil
}
