package users

import (
	"context"

	"github.com/dmitrijs2005/dilbilim/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountByEmail(ctx context.Context, email string) (int, error)
}
