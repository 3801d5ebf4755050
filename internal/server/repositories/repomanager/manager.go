package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/alphabets"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/dialects"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/languages"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/users"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/words"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Languages(db dbx.DBTX) languages.Repository
	Dialects(db dbx.DBTX) dialects.Repository
	Words(db dbx.DBTX) words.Repository
	Alphabets(db dbx.DBTX) alphabets.Repository
}
