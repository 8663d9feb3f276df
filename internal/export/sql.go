package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

// DesignatedID returns the index of the column rendered as the auto-increment
// primary key, or -1. It is the first sequential id whose values are plain
// integers.
func DesignatedID(fields []types.FieldSpec) int {
	for i, f := range fields {
		if !f.IsSequentialID() {
			continue
		}
		opts, _ := f.Options.(types.IDOptions)
		if opts.Prefix != "" || opts.Suffix != "" {
			continue
		}
		if f.Column == "" || f.Column == types.ColumnInteger {
			return i
		}
	}
	return -1
}

// NotNull reports whether the column can be declared NOT NULL. Fields backed by
// a named custom type may carry their own null rate.
func NotNull(f types.FieldSpec) bool {
	if f.IsID() {
		return true
	}
	if f.AllowNull {
		return false
	}
	if opts, ok := f.Options.(types.CustomOptions); ok && opts.TypeName != "" {
		return false
	}
	return true
}

// CreateTable renders the CREATE TABLE statement for fields.
func CreateTable(d Dialect, table string, fields []types.FieldSpec) string {
	id := DesignatedID(fields)
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(d.QuoteIdent(table))
	b.WriteString(" (\n")
	for i, f := range fields {
		b.WriteString("  ")
		b.WriteString(d.QuoteIdent(f.Name))
		b.WriteByte(' ')
		if i == id {
			b.WriteString(d.AutoIncrementColumn())
		} else {
			b.WriteString(d.ColumnType(f))
			if NotNull(f) {
				b.WriteString(" NOT NULL")
			}
		}
		if i < len(fields)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(");")
	return b.String()
}

type sqlWriter struct {
	*sink
	dialect Dialect
	fields  []types.FieldSpec
	table   string
	batch   int
	id      int
	prefix  string
	pending []string
}

func newSQLWriter(s *sink, fields []types.FieldSpec, opts Options) (*sqlWriter, error) {
	d := opts.Dialect.normalize()
	if _, err := ParseDialect(string(d)); err != nil {
		return nil, err
	}
	w := &sqlWriter{
		sink:    s,
		dialect: d,
		fields:  fields,
		table:   opts.tableName(),
		batch:   max(opts.BatchSize, 1),
		id:      DesignatedID(fields),
	}

	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = d.QuoteIdent(f.Name)
	}
	w.prefix = fmt.Sprintf("INSERT INTO %s (%s) VALUES", d.QuoteIdent(w.table), strings.Join(cols, ", "))
	return w, nil
}

func (w *sqlWriter) Begin() error {
	w.str(CreateTable(w.dialect, w.table, w.fields))
	w.str("\n")
	return w.err
}

func (w *sqlWriter) WriteRow(row types.Row) error {
	vals := make([]string, len(w.fields))
	for i := range w.fields {
		v := cell(row, i)
		if i == w.id {
			v = idLiteral(v)
		}
		vals[i] = w.dialect.Literal(v)
	}
	tuple := "(" + strings.Join(vals, ", ") + ")"

	if w.batch == 1 {
		w.str("\n" + w.prefix + " " + tuple + ";")
		return w.err
	}
	w.pending = append(w.pending, tuple)
	if len(w.pending) >= w.batch {
		w.flush()
	}
	return w.err
}

func (w *sqlWriter) End() error {
	w.flush()
	w.str("\n")
	return w.err
}

func (w *sqlWriter) flush() {
	if len(w.pending) == 0 {
		return
	}
	w.str("\n" + w.prefix + "\n")
	w.str(strings.Join(w.pending, ",\n"))
	w.str(";")
	w.pending = w.pending[:0]
}

// idLiteral turns a zero-padded id string into the integer the auto-increment
// column expects.
func idLiteral(v types.Value) types.Value {
	if v.Kind != types.KindString {
		return v
	}
	n, err := strconv.ParseInt(v.Str, 10, 64)
	if err != nil {
		return v
	}
	return types.Int(n)
}
