package languages

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

// Create stores name, code and word count. The store assigns the ID.
func (r *SQLRepository) Create(ctx context.Context, language *models.Language) (*models.Language, error) {
	query :=
		`INSERT INTO language (name, code, word_count)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		language.Name, language.Code, language.WordCount).Scan(&language.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return language, nil
}

// List returns every language in store order. The result is never nil.
func (r *SQLRepository) List(ctx context.Context) ([]*models.Language, error) {
	query :=
		`SELECT id, COALESCE(name, ''), COALESCE(code, ''), word_count FROM language
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Language, 0)
	for rows.Next() {
		l := &models.Language{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Code, &l.WordCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	query :=
		`SELECT id, COALESCE(name, ''), COALESCE(code, ''), word_count FROM language
		 WHERE id = ?
		 `

	l := &models.Language{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Code, &l.WordCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}
