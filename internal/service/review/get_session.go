package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/review/grading"
)

// GetSession returns the full read model of one session: score, lifecycle
// status, and every question with the vocabulary it tested and the stored
// answer. Returns domain.ErrNotFound for an unknown session.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*SessionDetail, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	session, err := s.reviews.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	questions, err := s.reviews.ListQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list session questions: %w", err)
	}

	ids := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		ids[i] = q.VocabularyID
	}
	vocabs, err := s.vocabs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get session vocabularies: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Vocabulary, len(vocabs))
	for _, v := range vocabs {
		byID[v.ID] = v
	}

	answered := 0
	results := make([]QuestionResult, 0, len(questions))
	for _, q := range questions {
		if q.Answered() {
			answered++
		}

		answer := UserAnswer{Synonyms: []string{}}
		answer.Word = q.UserWord
		if q.UserSynonyms != nil {
			answer.Synonyms = grading.ParseSynonyms(*q.UserSynonyms)
		}

		results = append(results, QuestionResult{
			QuestionID: q.ID,
			Vocabulary: byID[q.VocabularyID],
			UserAnswer: answer,
			IsCorrect:  q.IsCorrect,
			AnsweredAt: q.AnsweredAt,
		})
	}

	return &SessionDetail{
		Session:         session,
		Status:          session.Status(answered),
		ScorePercentage: grading.ScorePercentage(session.CorrectAnswers, session.TotalQuestions),
		Questions:       results,
	}, nil
}
