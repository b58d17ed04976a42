package command

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

const maxColWidth = 80

// PrintTable writes rows under header as an aligned table.
func PrintTable(w io.Writer, header []string, rows [][]string) error {
	table := uitable.New()
	table.MaxColWidth = maxColWidth

	table.AddRow(toAny(header)...)
	for _, row := range rows {
		table.AddRow(toAny(row)...)
	}

	if _, err := fmt.Fprintln(w, table.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func toAny(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
