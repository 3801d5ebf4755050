package alphabets

import (
	"context"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, alphabet *models.Alphabet) (*models.Alphabet, error)
	ListByLanguage(ctx context.Context, languageID int64) ([]*models.Alphabet, error)
}
