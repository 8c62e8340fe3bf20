package merger

import (
	"io"
	"strconv"
	"strings"
)

// Render produces the header line followed by one line per identifier.
// ids are expected in ascending order, columns in ingestion order.
func Render(columns []*Column, ids []int64, options ...Option) []string {
	r := newRenderer(options)
	lines := make([]string, 0, len(ids)+1)

	header := make([]string, 0, len(columns)+1)
	header = append(header, r.idHeader)
	for _, column := range columns {
		header = append(header, column.Name)
	}
	lines = append(lines, strings.Join(header, r.separator))

	row := make([]string, len(columns)+1)
	for _, id := range ids {
		row[0] = strconv.FormatInt(id, 10)
		for i, column := range columns {
			row[i+1] = r.cell(column, id)
		}
		lines = append(lines, strings.Join(row, r.separator))
	}
	return lines
}

// Encode writes lines, each newline terminated
func Encode(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
