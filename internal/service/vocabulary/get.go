package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// Get returns a single entry with its synonym set.
// Returns domain.ErrNotFound if the entry does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.vocabs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary: %w", err)
	}

	return entry, nil
}
