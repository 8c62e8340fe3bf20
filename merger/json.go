package merger

import (
	"bytes"

	"github.com/tidwall/sjson"
)

// EncodeJSON encodes columns as {"columns":[...],"rows":[{"id":N,"values":[...]}]}
func EncodeJSON(columns []*Column, ids []int64, options ...Option) ([]byte, error) {
	r := newRenderer(options)
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
	}

	rows := &bytes.Buffer{}
	rows.WriteByte('[')
	values := make([]string, len(columns))
	for i, id := range ids {
		for j, column := range columns {
			values[j] = r.cell(column, id)
		}
		row, err := sjson.SetBytes([]byte(`{}`), "id", id)
		if err != nil {
			return nil, err
		}
		if row, err = sjson.SetBytes(row, "values", values); err != nil {
			return nil, err
		}
		if i > 0 {
			rows.WriteByte(',')
		}
		rows.Write(row)
	}
	rows.WriteByte(']')

	data, err := sjson.SetBytes([]byte(`{}`), "columns", names)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(data, "rows", rows.Bytes())
}
