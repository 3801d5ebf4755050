package dialects

import (
	"context"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, dialect *models.Dialect) (*models.Dialect, error)
	ListByLanguage(ctx context.Context, languageID int64) ([]*models.Dialect, error)
}
