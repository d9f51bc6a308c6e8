// Package vocabulary implements the library business logic: create, search,
// update, and delete vocabulary entries with their synonym sets.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/config"
	"github.com/toevol/toevol-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	List(ctx context.Context, filter domain.VocabularyFilter) ([]*domain.Vocabulary, int, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error)
	ReplaceSynonyms(ctx context.Context, vocabularyID uuid.UUID, words []string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary library business logic.
type Service struct {
	vocabs     vocabularyRepo
	tx         txManager
	log        *slog.Logger
	pagination config.PaginationConfig
}

// NewService creates a new vocabulary service.
func NewService(log *slog.Logger, vocabs vocabularyRepo, tx txManager, pagination config.PaginationConfig) *Service {
	return &Service{
		vocabs:     vocabs,
		tx:         tx,
		log:        log.With("service", "vocabulary"),
		pagination: pagination,
	}
}
