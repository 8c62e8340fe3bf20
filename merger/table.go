package merger

import (
	"io"
	"slices"
)

// Table accumulates columns and the identifier universe across sources
type Table struct {
	Columns []*Column
	ids     map[int64]struct{}
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{ids: map[int64]struct{}{}}
}

// Ingest reads a source and appends its column; identifiers join the universe only once the source is fully read
func (t *Table) Ingest(r io.Reader, source string) (*Column, error) {
	column, err := Ingest(r, source)
	if err != nil {
		return nil, err
	}
	t.Add(column)
	return column, nil
}

// Add appends column and registers its identifiers
func (t *Table) Add(column *Column) {
	t.Columns = append(t.Columns, column)
	for id := range column.Tags {
		t.ids[id] = struct{}{}
	}
}

// IDs returns the identifier universe in ascending order
func (t *Table) IDs() []int64 {
	result := make([]int64, 0, len(t.ids))
	for id := range t.ids {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// Render renders the table rows, see Render
func (t *Table) Render(options ...Option) []string {
	return Render(t.Columns, t.IDs(), options...)
}

// EncodeJSON encodes the table as JSON, see EncodeJSON
func (t *Table) EncodeJSON(options ...Option) ([]byte, error) {
	return EncodeJSON(t.Columns, t.IDs(), options...)
}
