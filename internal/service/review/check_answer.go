package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/review/grading"
)

// CheckAnswer grades one typed answer and records the outcome.
//
// Grading is pure; persistence (answer record + score increment) happens
// afterwards as one transaction per question. A question can be answered only
// once: a second submission, including one racing this call, is rejected
// with domain.ErrConflict. Any other persistence failure is logged but does
// not block the response: the computed grade is authoritative even if the
// durability write fails.
func (s *Service) CheckAnswer(ctx context.Context, input CheckAnswerInput) (*CheckAnswerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.reviews.GetQuestion(ctx, input.SessionID, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if question.Answered() {
		return nil, fmt.Errorf("question %s already answered: %w", question.ID, domain.ErrConflict)
	}

	vocab, err := s.vocabs.GetByID(ctx, question.VocabularyID)
	if err != nil {
		return nil, fmt.Errorf("get question vocabulary: %w", err)
	}

	canonSynonyms := vocab.SynonymWords()
	grade := grading.Grade(vocab.Word, canonSynonyms, input.UserWord, input.UserSynonyms)

	if err := s.persistOutcome(ctx, question, input, grade.IsCorrect); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		// Availability over durability: the grade has been computed, so
		// losing the write costs a stale counter, not a wrong answer.
		s.log.ErrorContext(ctx, "failed to persist answer outcome",
			slog.String("session_id", input.SessionID.String()),
			slog.String("question_id", input.QuestionID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &CheckAnswerResult{
		IsCorrect:       grade.IsCorrect,
		WordCorrect:     grade.WordCorrect,
		SynonymsCorrect: grade.SynonymsCorrect,
		CorrectWord:     vocab.Word,
		UserWord:        strings.TrimSpace(input.UserWord),
		CorrectSynonyms: canonSynonyms,
		UserSynonyms:    grading.ParseSynonyms(input.UserSynonyms),
		MissingSynonyms: grade.Synonyms.Missing,
		ExtraSynonyms:   grade.Synonyms.Extra,
	}, nil
}

// persistOutcome writes the answer record and, when correct, bumps the
// session counter, both in one transaction so the counter can never drift
// from the per-question verdicts. The answer UPDATE is guarded on
// answered_at IS NULL, which also resolves double-submission races.
func (s *Service) persistOutcome(ctx context.Context, question *domain.ReviewQuestion, input CheckAnswerInput, isCorrect bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	userWord := storedAnswer(input.UserWord)
	userSynonyms := storedAnswer(input.UserSynonyms)
	answeredAt := s.now()

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reviews.MarkAnswered(txCtx, question.ID, userWord, userSynonyms, isCorrect, answeredAt); err != nil {
			return err
		}
		if isCorrect {
			return s.reviews.IncrementCorrect(txCtx, question.SessionID)
		}
		return nil
	})
}

// storedAnswer trims the raw input and stores emptiness as absence.
func storedAnswer(raw string) *string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil
	}
	return &t
}
