package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server/config"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/alphabets"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/dialects"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/languages"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/users"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/words"
	"github.com/dmitrijs2005/dilbilim/internal/server/storage"
	"github.com/stretchr/testify/require"
)

// newTestConfig keeps argon2 cheap.
func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PasswordHashMemoryKiB = 1024
	return cfg
}

// newSQLiteStore opens a migrated database in a temp dir.
func newSQLiteStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, dbx.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := repomanager.NewSQLRepositoryManager(dbx.DialectSQLite)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	return db, m
}

// --- fakes ---

type fakeUsersRepo struct {
	countOut  int
	countErr  error
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	return f.countOut, f.countErr
}

type fakeLanguagesRepo struct {
	listOut   []*models.Language
	listErr   error
	createErr error
}

func (f *fakeLanguagesRepo) Create(ctx context.Context, l *models.Language) (*models.Language, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	l.ID = 1
	return l, nil
}

func (f *fakeLanguagesRepo) List(ctx context.Context) ([]*models.Language, error) {
	return f.listOut, f.listErr
}

func (f *fakeLanguagesRepo) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	return nil, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	l *fakeLanguagesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository          { return m.u }
func (m *fakeRepoManager) Languages(db dbx.DBTX) languages.Repository  { return m.l }
func (m *fakeRepoManager) Dialects(db dbx.DBTX) dialects.Repository    { return nil }
func (m *fakeRepoManager) Words(db dbx.DBTX) words.Repository          { return nil }
func (m *fakeRepoManager) Alphabets(db dbx.DBTX) alphabets.Repository  { return nil }

var nopLogger logging.Logger = logging.Nop{}
