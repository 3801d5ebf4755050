package languages

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+language\s*\(name,\s*code,\s*word_count\)\s*VALUES\s*\(\?,\s*\?,\s*\?\)\s*RETURNING\s+id\s*$`
	listQuery   = `(?s)^SELECT\s+id,\s*COALESCE\(name,\s*''\),\s*COALESCE\(code,\s*''\),\s*word_count\s+FROM\s+language\s*$`
	getQuery    = `(?s)^SELECT\s+id,.*FROM\s+language\s+WHERE\s+id\s*=\s*\?\s*$`
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WithArgs("Türkçe", "tr", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.Create(context.Background(), &models.Language{Name: "Türkçe", Code: "tr"})
	require.NoError(t, err)
	assert.Equal(t, &models.Language{ID: 1, Name: "Türkçe", Code: "tr", WordCount: 0}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), &models.Language{Name: "x", Code: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: boom")
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "word_count"}).
		AddRow(int64(1), "Türkçe", "tr", 0).
		AddRow(int64(2), "Kurmancî", "kmr", 12)
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*models.Language{
		{ID: 1, Name: "Türkçe", Code: "tr", WordCount: 0},
		{ID: 2, Name: "Kurmancî", Code: "kmr", WordCount: 12},
	}, got)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "word_count"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(listQuery).WillReturnError(errors.New("down"))

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "db error: down")
	})

	t.Run("rows", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		rows := sqlmock.NewRows([]string{"id", "name", "code", "word_count"}).
			AddRow(int64(1), "a", "b", 0).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(listQuery).WillReturnRows(rows)

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "broken row")
	})
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(getQuery).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "word_count"}).AddRow(int64(5), "Zazaki", "zza", 3))
	mock.ExpectQuery(getQuery).WithArgs(int64(6)).WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Zazaki", got.Name)

	_, err = repo.GetByID(context.Background(), 6)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
