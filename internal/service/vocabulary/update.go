package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/toevol/toevol-backend/internal/domain"
)

// Update applies a partial update. A provided synonym list replaces the whole
// set (full delete-then-reinsert) in the same transaction, so the stored set
// always mirrors the latest edit. Returns domain.ErrNotFound for an unknown
// id and domain.ErrAlreadyExists on a word collision.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Vocabulary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := domain.VocabularyUpdate{
		PartOfSpeech:  trimmed(input.PartOfSpeech),
		ExampleSource: trimmed(input.ExampleSource),
		ExampleTarget: trimmed(input.ExampleTarget),
		ImageURL:      trimmed(input.ImageURL),
	}
	if input.Word != nil {
		w := domain.NormalizeText(*input.Word)
		upd.Word = &w
	}
	if input.Meaning != nil {
		m := strings.TrimSpace(*input.Meaning)
		upd.Meaning = &m
	}

	var updated *domain.Vocabulary
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, txErr := s.vocabs.Update(txCtx, input.ID, upd); txErr != nil {
			return txErr
		}

		if input.Synonyms != nil {
			words := lo.FilterMap(input.Synonyms, func(w string, _ int) (string, bool) {
				n := domain.NormalizeText(w)
				return n, n != ""
			})
			if txErr := s.vocabs.ReplaceSynonyms(txCtx, input.ID, words); txErr != nil {
				return txErr
			}
		}

		var txErr error
		updated, txErr = s.vocabs.GetByID(txCtx, input.ID)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("update vocabulary: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary updated",
		slog.String("vocabulary_id", updated.ID.String()),
	)

	return updated, nil
}

// trimmed trims a provided optional field, keeping nil as "unchanged".
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
