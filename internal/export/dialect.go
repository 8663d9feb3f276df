package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/lib/pq"
)

// Dialect selects identifier quoting, literal escaping and DDL types for SQL
// output.
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var Dialects = []Dialect{DialectMySQL, DialectPostgres, DialectSQLite}

// ParseDialect accepts the dialect names and the database provider names used
// in configuration. Empty means mysql.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mysql", "mariadb":
		return DialectMySQL, nil
	case "postgres", "postgresql", "pg":
		return DialectPostgres, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	}
	return "", fmt.Errorf("unsupported SQL dialect: %s", s)
}

func (d Dialect) normalize() Dialect {
	if d == "" {
		return DialectMySQL
	}
	return d
}

// QuoteIdent quotes a table or column name.
func (d Dialect) QuoteIdent(name string) string {
	switch d.normalize() {
	case DialectPostgres:
		return pq.QuoteIdentifier(name)
	case DialectSQLite:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	default:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
}

// QuoteString renders s as a string literal.
func (d Dialect) QuoteString(s string) string {
	switch d.normalize() {
	case DialectPostgres:
		return pq.QuoteLiteral(s)
	case DialectSQLite:
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	default:
		s = strings.ReplaceAll(s, `\`, `\\`)
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
}

// Literal renders v as a SQL literal.
func (d Dialect) Literal(v types.Value) string {
	switch v.Kind {
	case types.KindNull:
		return "NULL"
	case types.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case types.KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case types.KindBool:
		if d.normalize() == DialectSQLite {
			if v.Bool {
				return "1"
			}
			return "0"
		}
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	}
	return d.QuoteString(v.Str)
}

// AutoIncrementColumn is the DDL for the designated id column.
func (d Dialect) AutoIncrementColumn() string {
	switch d.normalize() {
	case DialectPostgres:
		return "SERIAL PRIMARY KEY"
	case DialectSQLite:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return "INT AUTO_INCREMENT PRIMARY KEY"
	}
}

// ColumnType maps a field to its DDL type.
func (d Dialect) ColumnType(f types.FieldSpec) string {
	d = d.normalize()
	switch f.ColumnType() {
	case types.ColumnInteger:
		if d == DialectMySQL {
			return "INT"
		}
		return "INTEGER"
	case types.ColumnFloat:
		if d == DialectMySQL {
			return "FLOAT"
		}
		return "REAL"
	case types.ColumnDouble:
		switch d {
		case DialectPostgres:
			return "DOUBLE PRECISION"
		case DialectSQLite:
			return "REAL"
		}
		return "DOUBLE"
	case types.ColumnBoolean:
		return "BOOLEAN"
	}

	switch f.Type {
	case types.TypeDate:
		return "DATE"
	case types.TypeDateTime:
		if d == DialectPostgres {
			return "TIMESTAMP"
		}
		return "DATETIME"
	case types.TypeTime:
		return "TIME"
	case types.TypeText:
		return "TEXT"
	}
	return "VARCHAR(255)"
}
