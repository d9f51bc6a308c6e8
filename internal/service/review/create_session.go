package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// CreateSession samples a quiz from the library and persists it.
//
// The requested count is silently capped at the pool size: asking for more
// questions than the library holds is not an error, just unsatisfiable in
// full. An empty library is a validation failure. The sampled set is fixed
// here; later vocabulary edits never change a session's question set.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.NumberOfQuestions > s.cfg.MaxQuestions {
		return nil, domain.NewValidationError("number_of_questions",
			fmt.Sprintf("must be at most %d", s.cfg.MaxQuestions))
	}

	poolIDs, err := s.vocabs.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary pool: %w", err)
	}
	if len(poolIDs) == 0 {
		return nil, domain.NewValidationError("number_of_questions", "no vocabularies available for review")
	}

	actual := min(input.NumberOfQuestions, len(poolIDs))
	selected := samplePrefix(poolIDs, actual, s.randIntN)

	session := &domain.ReviewSession{
		ID:             uuid.New(),
		TotalQuestions: actual,
		CreatedAt:      s.now(),
	}

	var (
		created   *domain.ReviewSession
		questions []*domain.ReviewQuestion
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, questions, txErr = s.reviews.CreateSession(txCtx, session, selected)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("create review session: %w", err)
	}

	prompts, err := s.buildPrompts(ctx, questions)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review session created",
		slog.String("session_id", created.ID.String()),
		slog.Int("requested", input.NumberOfQuestions),
		slog.Int("total_questions", created.TotalQuestions),
	)

	return &CreateSessionResult{Session: created, Questions: prompts}, nil
}

// buildPrompts resolves the sampled vocabulary entries and pairs them with
// their questions, preserving question order.
func (s *Service) buildPrompts(ctx context.Context, questions []*domain.ReviewQuestion) ([]QuestionPrompt, error) {
	ids := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		ids[i] = q.VocabularyID
	}

	vocabs, err := s.vocabs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get sampled vocabularies: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Vocabulary, len(vocabs))
	for _, v := range vocabs {
		byID[v.ID] = v
	}

	prompts := make([]QuestionPrompt, 0, len(questions))
	for _, q := range questions {
		v, ok := byID[q.VocabularyID]
		if !ok {
			return nil, fmt.Errorf("sampled vocabulary %s: %w", q.VocabularyID, domain.ErrNotFound)
		}
		prompts = append(prompts, QuestionPrompt{
			QuestionID:    q.ID,
			VocabularyID:  v.ID,
			Meaning:       v.Meaning,
			PartOfSpeech:  v.PartOfSpeech,
			ExampleSource: v.ExampleSource,
			ExampleTarget: v.ExampleTarget,
			ImageURL:      v.ImageURL,
		})
	}

	return prompts, nil
}
