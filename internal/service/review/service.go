// Package review implements the review quiz business logic: sampling a
// session's questions from the library, grading typed answers, and keeping
// the session score consistent.
package review

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/config"
	"github.com/toevol/toevol-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Vocabulary, error)
}

type reviewRepo interface {
	CreateSession(ctx context.Context, session *domain.ReviewSession, vocabularyIDs []uuid.UUID) (*domain.ReviewSession, []*domain.ReviewQuestion, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error)
	ListSessions(ctx context.Context, limit int) ([]*domain.ReviewSession, error)
	GetQuestion(ctx context.Context, sessionID, questionID uuid.UUID) (*domain.ReviewQuestion, error)
	ListQuestions(ctx context.Context, sessionID uuid.UUID) ([]*domain.ReviewQuestion, error)
	MarkAnswered(ctx context.Context, questionID uuid.UUID, userWord, userSynonyms *string, isCorrect bool, answeredAt time.Time) error
	IncrementCorrect(ctx context.Context, sessionID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service orchestrates review sessions: it is the only component that
// triggers the grader's persistence side effect and the score increment,
// and it does both as a single unit per question.
type Service struct {
	vocabs  vocabularyRepo
	reviews reviewRepo
	tx      txManager
	log     *slog.Logger
	cfg     config.ReviewConfig

	// now and randIntN are swapped out in tests.
	now      func() time.Time
	randIntN func(n int) int
}

// NewService creates a new review service.
func NewService(log *slog.Logger, vocabs vocabularyRepo, reviews reviewRepo, tx txManager, cfg config.ReviewConfig) *Service {
	return &Service{
		vocabs:   vocabs,
		reviews:  reviews,
		tx:       tx,
		log:      log.With("service", "review"),
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		randIntN: rand.IntN,
	}
}
