// Package repomanager provides a RepositoryManager for the SQL stores,
// wiring together repository constructors and schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/server/migrations"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/alphabets"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/dialects"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/languages"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/users"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/words"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends repositories whose queries are rebound for
// its dialect, and migrates the schema from the dialect's migration set.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(dbx.Bind(db, m.dialect))
}

// Languages returns a languages.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Languages(db dbx.DBTX) languages.Repository {
	return languages.NewSQLRepository(dbx.Bind(db, m.dialect))
}

func (m *SQLRepositoryManager) Dialects(db dbx.DBTX) dialects.Repository {
	return dialects.NewSQLRepository(dbx.Bind(db, m.dialect))
}

func (m *SQLRepositoryManager) Words(db dbx.DBTX) words.Repository {
	return words.NewSQLRepository(dbx.Bind(db, m.dialect))
}

func (m *SQLRepositoryManager) Alphabets(db dbx.DBTX) alphabets.Repository {
	return alphabets.NewSQLRepository(dbx.Bind(db, m.dialect))
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, string(m.dialect)); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.DialectSQLite, dbx.DialectPostgres:
		return &SQLRepositoryManager{dialect: dialect}, nil
	}
	return nil, fmt.Errorf("unsupported dialect %q", dialect)
}
