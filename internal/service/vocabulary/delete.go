package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// Delete removes an entry from the library; its synonyms are removed by
// cascade. Returns domain.ErrNotFound if the entry does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.vocabs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vocabulary: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary deleted",
		slog.String("vocabulary_id", id.String()),
	)

	return nil
}
