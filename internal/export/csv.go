package export

import (
	"bytes"
	"encoding/csv"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

// csvWriter emits a header line then one line per row, separated by "\n" with
// no trailing newline.
type csvWriter struct {
	*sink
	fields []types.FieldSpec
	line   bytes.Buffer
	enc    *csv.Writer
	record []string
	lines  int
}

func newCSVWriter(s *sink, fields []types.FieldSpec) *csvWriter {
	c := &csvWriter{sink: s, fields: fields, record: make([]string, len(fields))}
	c.enc = csv.NewWriter(&c.line)
	return c
}

func (c *csvWriter) Begin() error {
	for i, f := range c.fields {
		c.record[i] = f.Name
	}
	return c.writeRecord()
}

func (c *csvWriter) WriteRow(row types.Row) error {
	for i := range c.fields {
		c.record[i] = cell(row, i).String()
	}
	return c.writeRecord()
}

func (c *csvWriter) End() error {
	return c.err
}

func (c *csvWriter) writeRecord() error {
	c.line.Reset()
	if err := c.enc.Write(c.record); err != nil {
		return err
	}
	c.enc.Flush()
	if err := c.enc.Error(); err != nil {
		return err
	}
	if c.lines > 0 {
		c.str("\n")
	}
	c.lines++
	line := bytes.TrimSuffix(c.line.Bytes(), []byte("\n"))
	if len(line) == 0 {
		// A blank line is skipped by readers; quote the lone empty cell.
		line = []byte(`""`)
	}
	c.bytes(line)
	return c.err
}
