package languages

import (
	"context"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, language *models.Language) (*models.Language, error)
	List(ctx context.Context) ([]*models.Language, error)
	GetByID(ctx context.Context, id int64) (*models.Language, error)
}
