// Package storage opens the relational store backing the server.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open connects to the store for the dialect and verifies it answers.
//
// For SQLite the database file (and its directory) is created on demand,
// foreign keys are switched on, and the pool is limited to one connection so
// write transactions never interleave.
func Open(ctx context.Context, dialect dbx.Dialect, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	if dialect == dbx.DialectSQLite {
		if !isMemoryDSN(dsn) {
			if err := filex.EnsureParentDir(sqlitePath(dsn)); err != nil {
				return nil, fmt.Errorf("prepare sqlite dir: %w", err)
			}
		}
		dsn = withSQLitePragmas(dsn)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if dialect == dbx.DialectSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func sqlitePath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return strings.TrimPrefix(path, "file:")
}

func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return dsn + "?" + sqlitePragmas
}
