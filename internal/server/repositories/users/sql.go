// Package users persists accounts in the "user" table.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create inserts user and fills in its ID. A second row with the same email
// is rejected by the unique index and reported as common.ErrorAlreadyExists.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO "user" (email, password_hash, is_admin)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.IsAdmin).Scan(&user.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, is_admin FROM "user"
		 WHERE email = ?
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM "user"
		 WHERE email = ?
		 `

	var n int
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}
