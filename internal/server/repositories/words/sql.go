package words

import (
	"context"
	"database/sql"
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

// Create inserts word. An empty Status is stored as models.DefaultWordStatus;
// any other value is left for the schema check to accept or reject.
func (r *SQLRepository) Create(ctx context.Context, word *models.Word) (*models.Word, error) {
	query :=
		`INSERT INTO word (word, language_id, dialect_id, root, suffixes, meaning, status, suggested_by, etymology)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id
		 `

	if word.Status == "" {
		word.Status = models.DefaultWordStatus
	}

	err := r.db.QueryRowContext(ctx, query,
		word.Word, word.LanguageID, nullInt64(word.DialectID), word.Root, word.Suffixes,
		word.Meaning, string(word.Status), nullInt64(word.SuggestedBy), word.Etymology,
	).Scan(&word.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return word, nil
}

func (r *SQLRepository) ListByLanguage(ctx context.Context, languageID int64) ([]*models.Word, error) {
	query :=
		`SELECT id, COALESCE(word, ''), language_id, dialect_id, COALESCE(root, ''), COALESCE(suffixes, ''),
		        COALESCE(meaning, ''), status, suggested_by, COALESCE(etymology, '')
		 FROM word
		 WHERE language_id = ?
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, languageID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Word, 0)
	for rows.Next() {
		var (
			w           models.Word
			status      string
			dialectID   sql.NullInt64
			suggestedBy sql.NullInt64
		)
		err := rows.Scan(&w.ID, &w.Word, &w.LanguageID, &dialectID, &w.Root, &w.Suffixes,
			&w.Meaning, &status, &suggestedBy, &w.Etymology)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		w.Status = models.Status(status)
		w.DialectID = ptrInt64(dialectID)
		w.SuggestedBy = ptrInt64(suggestedBy)
		result = append(result, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func ptrInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
