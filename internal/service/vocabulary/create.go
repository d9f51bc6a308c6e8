package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/toevol/toevol-backend/internal/domain"
)

// Create adds a new entry to the library. The word and synonyms are stored
// normalized; optional fields are trimmed, with empty values stored as NULL.
// Returns domain.ErrAlreadyExists when the word is already in the library.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Vocabulary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.Vocabulary{
		ID:            uuid.New(),
		Word:          domain.NormalizeText(input.Word),
		Meaning:       strings.TrimSpace(input.Meaning),
		PartOfSpeech:  optional(input.PartOfSpeech),
		ExampleSource: optional(input.ExampleSource),
		ExampleTarget: optional(input.ExampleTarget),
		ImageURL:      optional(input.ImageURL),
		Synonyms:      toSynonyms(input.Synonyms),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var created *domain.Vocabulary
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.vocabs.Create(txCtx, entry)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("create vocabulary: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary created",
		slog.String("vocabulary_id", created.ID.String()),
		slog.String("word", created.Word),
	)

	return created, nil
}

// toSynonyms normalizes raw synonym texts and drops the ones that normalize
// to the empty string.
func toSynonyms(words []string) []domain.Synonym {
	normalized := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		n := domain.NormalizeText(w)
		return n, n != ""
	})
	return lo.Map(normalized, func(w string, _ int) domain.Synonym {
		return domain.Synonym{Word: w}
	})
}

// optional trims a raw field value and maps the empty result to nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
