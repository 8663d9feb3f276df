package export

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

// jsonWriter prints an array of objects with two-space indentation, keeping the
// keys in field order.
type jsonWriter struct {
	*sink
	fields []types.FieldSpec
	keys   [][]byte
	rows   int
}

func (j *jsonWriter) Begin() error {
	j.keys = make([][]byte, len(j.fields))
	for i, f := range j.fields {
		j.keys[i] = jsonString(f.Name)
	}
	return nil
}

func (j *jsonWriter) WriteRow(row types.Row) error {
	if j.rows == 0 {
		j.str("[\n")
	} else {
		j.str(",\n")
	}
	j.rows++

	if len(j.fields) == 0 {
		j.str("  {}")
		return j.err
	}
	j.str("  {\n")
	for i := range j.fields {
		if i > 0 {
			j.str(",\n")
		}
		j.str("    ")
		j.bytes(j.keys[i])
		j.str(": ")
		j.bytes(jsonValue(cell(row, i)))
	}
	j.str("\n  }")
	return j.err
}

func (j *jsonWriter) End() error {
	if j.rows == 0 {
		j.str("[]")
	} else {
		j.str("\n]")
	}
	return j.err
}

func jsonValue(v types.Value) []byte {
	switch v.Kind {
	case types.KindInt:
		return strconv.AppendInt(nil, v.Int, 10)
	case types.KindFloat:
		return strconv.AppendFloat(nil, v.Float, 'f', -1, 64)
	case types.KindBool:
		return strconv.AppendBool(nil, v.Bool)
	case types.KindString:
		return jsonString(v.Str)
	}
	return []byte("null")
}

// jsonString quotes s without HTML escaping.
func jsonString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return []byte(`""`)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// cell returns row[i], or null for short rows.
func cell(row types.Row, i int) types.Value {
	if i < len(row) {
		return row[i]
	}
	return types.Null
}
