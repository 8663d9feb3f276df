// Package seeder loads generated tables into a live database.
package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/database"
	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
)

const defaultBatch = 100

// maxParams bounds the bind parameters of one statement. SQLite builds before
// 3.32 stop at 999.
var maxParams = map[export.Dialect]int{
	export.DialectPostgres: 65535,
	export.DialectMySQL:    65535,
	export.DialectSQLite:   999,
}

type Options struct {
	Batch         int  // Rows per INSERT statement
	Truncate      bool // Clear the table before seeding
	NoTransaction bool // Disable transaction wrapping
	SkipCreate    bool // Do not issue CREATE TABLE IF NOT EXISTS
	// Progress, when set, is called after every inserted batch with the
	// running row count.
	Progress func(inserted int)
}

type Result struct {
	Table    string
	Rows     int
	Duration time.Duration
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Seeder struct {
	db   *database.DB
	gen  *generator.Generator
	opts Options
}

func New(db *database.DB, gen *generator.Generator, opts Options) *Seeder {
	return &Seeder{db: db, gen: gen, opts: opts}
}

// Seed generates cfg.Rows rows and inserts them into cfg.TableName.
func (s *Seeder) Seed(ctx context.Context, cfg *types.GeneratorConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table := cfg.TableName
	if table == "" {
		table = export.DefaultTableName
	}
	start := time.Now()
	color.Cyan("🌱 Seeding %s with %d rows...", table, cfg.Rows)

	if !s.opts.SkipCreate {
		ddl := export.CreateTable(s.db.Dialect, table, cfg.Fields)
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	if s.opts.Truncate {
		if err := s.truncate(ctx, table); err != nil {
			return nil, fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	var (
		exec execer = s.db
		tx   *sql.Tx
	)
	if !s.opts.NoTransaction {
		var err error
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			color.Yellow("⚠️  Could not start transaction: %v (continuing without transaction)", err)
		} else {
			exec = tx
			color.Cyan("🔒 Transaction started")
		}
	}

	ins := newInserter(s.db.Builder(), s.db.Dialect, table, cfg.Fields, s.opts.Batch)
	inserted := 0
	seedErr := s.gen.Stream(ctx, cfg, func(_ int, row types.Row) error {
		ins.add(row)
		if !ins.full() {
			return nil
		}
		n, err := ins.flush(ctx, exec)
		inserted += n
		if err == nil && s.opts.Progress != nil {
			s.opts.Progress(inserted)
		}
		return err
	})
	if seedErr == nil {
		var n int
		n, seedErr = ins.flush(ctx, exec)
		inserted += n
		if seedErr == nil && n > 0 && s.opts.Progress != nil {
			s.opts.Progress(inserted)
		}
	}

	if tx != nil {
		if seedErr != nil {
			color.Yellow("🔄 Rolling back transaction due to error...")
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, seedErr)
			}
			color.Yellow("✅ Transaction rolled back")
			return nil, seedErr
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		color.Cyan("🔓 Transaction committed")
	} else if seedErr != nil {
		return nil, seedErr
	}

	color.Green("✅ %s seeded successfully", table)
	return &Result{Table: table, Rows: inserted, Duration: time.Since(start)}, nil
}

func (s *Seeder) truncate(ctx context.Context, table string) error {
	color.Yellow("🗑️  Truncating %s...", table)
	quoted := s.db.Dialect.QuoteIdent(table)

	switch s.db.Dialect {
	case export.DialectPostgres:
		_, err := s.db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", quoted))
		return err
	case export.DialectMySQL:
		_, err := s.db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", quoted))
		return err
	default:
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", quoted)); err != nil {
			return err
		}
		// sqlite_sequence only exists once an AUTOINCREMENT table has been used.
		s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
		return nil
	}
}

// inserter accumulates rows and writes them as multi-row INSERT statements.
type inserter struct {
	qb      squirrel.StatementBuilderType
	table   string
	columns []string
	index   []int
	batch   int
	pending [][]any
}

func newInserter(qb squirrel.StatementBuilderType, d export.Dialect, table string, fields []types.FieldSpec, batch int) *inserter {
	// The auto-increment column is left to the database unless it is the only
	// column.
	skip := export.DesignatedID(fields)
	if len(fields) == 1 {
		skip = -1
	}

	ins := &inserter{qb: qb, table: d.QuoteIdent(table)}
	for i, f := range fields {
		if i == skip {
			continue
		}
		ins.columns = append(ins.columns, d.QuoteIdent(f.Name))
		ins.index = append(ins.index, i)
	}

	if batch <= 0 {
		batch = defaultBatch
	}
	if limit := maxParams[d] / max(len(ins.columns), 1); batch > limit {
		batch = max(limit, 1)
	}
	ins.batch = batch
	return ins
}

func (ins *inserter) add(row types.Row) {
	vals := make([]any, len(ins.index))
	for j, i := range ins.index {
		if i < len(row) {
			vals[j] = row[i].Interface()
		}
	}
	ins.pending = append(ins.pending, vals)
}

func (ins *inserter) full() bool {
	return len(ins.pending) >= ins.batch
}

func (ins *inserter) build() (string, []any, error) {
	q := ins.qb.Insert(ins.table).Columns(ins.columns...)
	for _, vals := range ins.pending {
		q = q.Values(vals...)
	}
	return q.ToSql()
}

func (ins *inserter) flush(ctx context.Context, exec execer) (int, error) {
	n := len(ins.pending)
	if n == 0 {
		return 0, nil
	}
	query, args, err := ins.build()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert batch: %w", err)
	}
	ins.pending = ins.pending[:0]
	return n, nil
}
