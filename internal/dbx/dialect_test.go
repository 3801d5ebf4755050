package dbx

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{in: "sqlite", want: DialectSQLite},
		{in: "SQLite3", want: DialectSQLite},
		{in: " pgx ", want: DialectPostgres},
		{in: "postgres", want: DialectPostgres},
		{in: "postgresql", want: DialectPostgres},
		{in: "mysql", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialect_Names(t *testing.T) {
	assert.Equal(t, "sqlite", DialectSQLite.DriverName())
	assert.Equal(t, "pgx", DialectPostgres.DriverName())
	assert.Equal(t, "sqlite3", DialectSQLite.GooseDialect())
	assert.Equal(t, "pgx", DialectPostgres.GooseDialect())
}

func TestRebind(t *testing.T) {
	q := `INSERT INTO language (name, code) VALUES (?, ?) RETURNING id`

	assert.Equal(t, q, DialectSQLite.Rebind(q))
	assert.Equal(t,
		`INSERT INTO language (name, code) VALUES ($1, $2) RETURNING id`,
		DialectPostgres.Rebind(q))

	assert.Equal(t,
		`SELECT id FROM word WHERE meaning = 'what?' AND word = $1`,
		DialectPostgres.Rebind(`SELECT id FROM word WHERE meaning = 'what?' AND word = ?`))
}

func TestBind_RewritesForPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM t WHERE id = $1 AND v = $2`).
		WithArgs(1, "x").
		WillReturnResult(sqlmock.NewResult(0, 1))

	bound := Bind(db, DialectPostgres)
	_, err = bound.ExecContext(context.Background(), `DELETE FROM t WHERE id = ? AND v = ?`, 1, "x")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Same(t, bound, Bind(bound, DialectPostgres), "rebinding twice must not wrap again")
}

func TestBind_SQLiteIsPassthrough(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DBTX(db), Bind(db, DialectSQLite))
}
