// Package database opens connections to the databases generated rows can be
// loaded into.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// DB is an open connection together with the SQL flavour it speaks.
type DB struct {
	*sql.DB
	Provider string
	Dialect  export.Dialect
	qb       squirrel.StatementBuilderType
}

// Builder returns a squirrel statement builder using the provider's
// placeholder format.
func (db *DB) Builder() squirrel.StatementBuilderType {
	return db.qb
}

// Open connects to url with the driver for provider and pings it.
func Open(ctx context.Context, provider, url string) (*DB, error) {
	dialect, err := export.ParseDialect(provider)
	if err != nil {
		return nil, err
	}

	var conn *sql.DB
	switch dialect {
	case export.DialectPostgres:
		conn, err = openPostgres(url)
	case export.DialectMySQL:
		conn, err = openMySQL(url)
	case export.DialectSQLite:
		conn, err = openSQLite(url)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", provider, err)
	}

	return &DB{
		DB:       conn,
		Provider: strings.ToLower(provider),
		Dialect:  dialect,
		qb:       squirrel.StatementBuilder.PlaceholderFormat(Placeholder(dialect)),
	}, nil
}

// Placeholder is the bind parameter style of d.
func Placeholder(d export.Dialect) squirrel.PlaceholderFormat {
	if d == export.DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func openPostgres(url string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}
	config.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db := stdlib.OpenDB(*config)
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

func openMySQL(url string) (*sql.DB, error) {
	dsn, err := MySQLDSN(url)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)
	return db, nil
}

func openSQLite(url string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", SQLitePath(url))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}
	// One writer keeps inserts from tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return db, nil
}
