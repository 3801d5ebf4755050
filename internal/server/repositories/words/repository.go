package words

import (
	"context"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, word *models.Word) (*models.Word, error)
	ListByLanguage(ctx context.Context, languageID int64) ([]*models.Word, error)
}
