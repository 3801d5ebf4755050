package alphabets

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

// Create inserts alphabet, storing models.DefaultAlphabetStatus when Status
// is empty.
func (r *SQLRepository) Create(ctx context.Context, alphabet *models.Alphabet) (*models.Alphabet, error) {
	query :=
		`INSERT INTO alphabet (name, language_id, status, description)
		 VALUES (?, ?, ?, ?)
		 RETURNING id
		 `

	if alphabet.Status == "" {
		alphabet.Status = models.DefaultAlphabetStatus
	}

	err := r.db.QueryRowContext(ctx, query,
		alphabet.Name, alphabet.LanguageID, string(alphabet.Status), alphabet.Description).Scan(&alphabet.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return alphabet, nil
}

func (r *SQLRepository) ListByLanguage(ctx context.Context, languageID int64) ([]*models.Alphabet, error) {
	query :=
		`SELECT id, COALESCE(name, ''), language_id, status, COALESCE(description, '') FROM alphabet
		 WHERE language_id = ?
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, languageID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Alphabet, 0)
	for rows.Next() {
		a := &models.Alphabet{}
		var status string
		if err := rows.Scan(&a.ID, &a.Name, &a.LanguageID, &status, &a.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Status = models.Status(status)
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
