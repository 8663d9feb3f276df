// Package export serializes generated tables into the supported output formats.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

const DefaultTableName = "mock_data"

// Options tune the serializers. The zero value is usable.
type Options struct {
	TableName string
	Dialect   Dialect
	// BatchSize > 1 groups SQL inserts into multi-row statements.
	BatchSize int
}

func (o Options) tableName() string {
	if name := strings.TrimSpace(o.TableName); name != "" {
		return name
	}
	return DefaultTableName
}

// RowWriter streams one table in a single format. Begin must be called once
// before the first WriteRow and End once after the last.
type RowWriter interface {
	Begin() error
	WriteRow(row types.Row) error
	End() error
}

// NewWriter returns a RowWriter for format writing to w.
func NewWriter(format types.Format, w io.Writer, fields []types.FieldSpec, opts Options) (RowWriter, error) {
	s := &sink{w: w}
	switch format {
	case types.FormatJSON, "":
		return &jsonWriter{sink: s, fields: fields}, nil
	case types.FormatCSV, types.FormatXLSX:
		return newCSVWriter(s, fields), nil
	case types.FormatSQL:
		return newSQLWriter(s, fields, opts)
	case types.FormatHTML:
		return &htmlWriter{sink: s, fields: fields, table: opts.tableName()}, nil
	case types.FormatXML:
		return &xmlWriter{sink: s, fields: fields, table: opts.tableName()}, nil
	}
	return nil, fmt.Errorf("%w: %s", types.ErrUnknownFormat, format)
}

// Encode writes the whole table to w.
func Encode(format types.Format, w io.Writer, table *types.Table, opts Options) error {
	if opts.TableName == "" {
		opts.TableName = table.Name
	}
	rw, err := NewWriter(format, w, table.Fields, opts)
	if err != nil {
		return err
	}
	if err := rw.Begin(); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := rw.WriteRow(row); err != nil {
			return err
		}
	}
	return rw.End()
}

// Serialize renders the table as a string in format.
func Serialize(format types.Format, table *types.Table, opts Options) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := Encode(format, buf, table, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extension returns the file extension for format, including the dot.
func Extension(format types.Format) string {
	switch format {
	case types.FormatCSV, types.FormatXLSX:
		return ".csv"
	case types.FormatSQL:
		return ".sql"
	case types.FormatHTML:
		return ".html"
	case types.FormatXML:
		return ".xml"
	default:
		return ".json"
	}
}

// ContentType is the MIME type served for format.
func ContentType(format types.Format) string {
	switch format {
	case types.FormatCSV, types.FormatXLSX:
		return "text/csv; charset=utf-8"
	case types.FormatSQL:
		return "application/sql; charset=utf-8"
	case types.FormatHTML:
		return "text/html; charset=utf-8"
	case types.FormatXML:
		return "application/xml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// FileName appends the extension for format unless base already carries it.
func FileName(base string, format types.Format) string {
	ext := Extension(format)
	if strings.EqualFold(filepath.Ext(base), ext) {
		return base
	}
	return base + ext
}

// sink remembers the first write error so serializers can write freely and
// check once.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) str(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func (s *sink) bytes(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}
