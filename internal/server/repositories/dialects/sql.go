package dialects

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, dialect *models.Dialect) (*models.Dialect, error) {
	query :=
		`INSERT INTO dialect (name, language_id)
		 VALUES (?, ?)
		 RETURNING id
		 `

	if err := r.db.QueryRowContext(ctx, query, dialect.Name, dialect.LanguageID).Scan(&dialect.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return dialect, nil
}

func (r *SQLRepository) ListByLanguage(ctx context.Context, languageID int64) ([]*models.Dialect, error) {
	query :=
		`SELECT id, COALESCE(name, ''), language_id FROM dialect
		 WHERE language_id = ?
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, languageID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Dialect, 0)
	for rows.Next() {
		d := &models.Dialect{}
		if err := rows.Scan(&d.ID, &d.Name, &d.LanguageID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
