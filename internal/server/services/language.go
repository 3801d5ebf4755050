package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/repomanager"
)

type LanguageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewLanguageService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *LanguageService {
	return &LanguageService{db: db, repomanager: m, logger: logger}
}

// List returns all languages; an empty store gives an empty, non-nil slice.
func (s *LanguageService) List(ctx context.Context) ([]*models.Language, error) {
	langs, err := s.repomanager.Languages(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return langs, nil
}

// Add stores a new language with a zero word count. Name and code are not
// checked for uniqueness.
func (s *LanguageService) Add(ctx context.Context, name, code string) (*models.Language, error) {
	lang, err := s.repomanager.Languages(s.db).Create(ctx, &models.Language{Name: name, Code: code})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "language added", "language_id", lang.ID, "code", lang.Code)
	return lang, nil
}
