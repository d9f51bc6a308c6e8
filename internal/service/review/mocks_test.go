package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// Hand-written mocks with overridable function fields. A nil field means the
// test does not expect that call.

type vocabularyRepoMock struct {
	ListIDsFunc  func(ctx context.Context) ([]uuid.UUID, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Vocabulary, error)
}

func (m *vocabularyRepoMock) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return m.ListIDsFunc(ctx)
}

func (m *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *vocabularyRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Vocabulary, error) {
	return m.GetByIDsFunc(ctx, ids)
}

type reviewRepoMock struct {
	CreateSessionFunc    func(ctx context.Context, session *domain.ReviewSession, vocabularyIDs []uuid.UUID) (*domain.ReviewSession, []*domain.ReviewQuestion, error)
	GetSessionFunc       func(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error)
	ListSessionsFunc     func(ctx context.Context, limit int) ([]*domain.ReviewSession, error)
	GetQuestionFunc      func(ctx context.Context, sessionID, questionID uuid.UUID) (*domain.ReviewQuestion, error)
	ListQuestionsFunc    func(ctx context.Context, sessionID uuid.UUID) ([]*domain.ReviewQuestion, error)
	MarkAnsweredFunc     func(ctx context.Context, questionID uuid.UUID, userWord, userSynonyms *string, isCorrect bool, answeredAt time.Time) error
	IncrementCorrectFunc func(ctx context.Context, sessionID uuid.UUID) error
}

func (m *reviewRepoMock) CreateSession(ctx context.Context, session *domain.ReviewSession, vocabularyIDs []uuid.UUID) (*domain.ReviewSession, []*domain.ReviewQuestion, error) {
	return m.CreateSessionFunc(ctx, session, vocabularyIDs)
}

func (m *reviewRepoMock) GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error) {
	return m.GetSessionFunc(ctx, id)
}

func (m *reviewRepoMock) ListSessions(ctx context.Context, limit int) ([]*domain.ReviewSession, error) {
	return m.ListSessionsFunc(ctx, limit)
}

func (m *reviewRepoMock) GetQuestion(ctx context.Context, sessionID, questionID uuid.UUID) (*domain.ReviewQuestion, error) {
	return m.GetQuestionFunc(ctx, sessionID, questionID)
}

func (m *reviewRepoMock) ListQuestions(ctx context.Context, sessionID uuid.UUID) ([]*domain.ReviewQuestion, error) {
	return m.ListQuestionsFunc(ctx, sessionID)
}

func (m *reviewRepoMock) MarkAnswered(ctx context.Context, questionID uuid.UUID, userWord, userSynonyms *string, isCorrect bool, answeredAt time.Time) error {
	return m.MarkAnsweredFunc(ctx, questionID, userWord, userSynonyms, isCorrect, answeredAt)
}

func (m *reviewRepoMock) IncrementCorrect(ctx context.Context, sessionID uuid.UUID) error {
	return m.IncrementCorrectFunc(ctx, sessionID)
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
