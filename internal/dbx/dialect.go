package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour a store speaks. Repositories write their
// queries with '?' placeholders once; Bind adapts them for the dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect maps a configured driver name onto a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// GooseDialect returns the dialect name understood by goose.
func (d Dialect) GooseDialect() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

// Rebind rewrites '?' placeholders into the dialect's positional form.
// Question marks inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

type boundDBTX struct {
	db      DBTX
	dialect Dialect
}

func (b *boundDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return b.db.ExecContext(ctx, b.dialect.Rebind(query), args...)
}

func (b *boundDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return b.db.QueryContext(ctx, b.dialect.Rebind(query), args...)
}

func (b *boundDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return b.db.QueryRowContext(ctx, b.dialect.Rebind(query), args...)
}

// Bind wraps db so that every query is rebound for the dialect before it
// reaches the driver. For SQLite db is returned as is.
func Bind(db DBTX, d Dialect) DBTX {
	if d != DialectPostgres {
		return db
	}
	if b, ok := db.(*boundDBTX); ok && b.dialect == d {
		return b
	}
	return &boundDBTX{db: db, dialect: d}
}
