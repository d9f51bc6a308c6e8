// Package review implements the review session and question repositories
// using PostgreSQL. All queries are raw SQL.
//
// Two statements carry the engine's consistency guarantees: markAnsweredSQL
// only touches rows whose answered_at is still NULL (a question is graded
// exactly once), and incrementCorrectSQL is a single atomic increment, never
// a read-then-write pair, so concurrent submissions cannot lose updates.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toevol/toevol-backend/internal/adapter/postgres"
	"github.com/toevol/toevol-backend/internal/domain"
)

// Repo provides review session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, total_questions, correct_answers, created_at`

const createSessionSQL = `
INSERT INTO review_sessions (id, total_questions, correct_answers, created_at)
VALUES ($1, $2, 0, $3)
RETURNING ` + sessionColumns

const getSessionSQL = `
SELECT ` + sessionColumns + `
FROM review_sessions
WHERE id = $1`

const listSessionsSQL = `
SELECT ` + sessionColumns + `
FROM review_sessions
ORDER BY created_at DESC
LIMIT $1`

const questionColumns = `id, review_session_id, vocabulary_id, user_word, user_synonyms, is_correct, answered_at, created_at`

const insertQuestionSQL = `
INSERT INTO review_questions (id, review_session_id, vocabulary_id, created_at)
VALUES ($1, $2, $3, $4)`

const getQuestionSQL = `
SELECT ` + questionColumns + `
FROM review_questions
WHERE id = $1 AND review_session_id = $2`

const listQuestionsSQL = `
SELECT ` + questionColumns + `
FROM review_questions
WHERE review_session_id = $1
ORDER BY created_at, id`

// Guard: only an unanswered question can be marked. Zero rows affected means
// the question was already graded (or vanished), and the caller maps that to
// a conflict.
const markAnsweredSQL = `
UPDATE review_questions
SET user_word = $2, user_synonyms = $3, is_correct = $4, answered_at = $5
WHERE id = $1 AND answered_at IS NULL`

// Atomic increment: the counter is computed inside the statement, so two
// concurrent correct answers both land.
const incrementCorrectSQL = `
UPDATE review_sessions
SET correct_answers = correct_answers + 1
WHERE id = $1`

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// CreateSession inserts a session with a zeroed correct-answer counter and
// one question row per sampled vocabulary id, in sampling order. Run inside
// a transaction so a session can never exist without its question set.
func (r *Repo) CreateSession(ctx context.Context, session *domain.ReviewSession, vocabularyIDs []uuid.UUID) (*domain.ReviewSession, []*domain.ReviewQuestion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSessionSQL, session.ID, session.TotalQuestions, session.CreatedAt)

	created, err := scanSession(row)
	if err != nil {
		return nil, nil, postgres.MapError(err, "review_session", session.ID)
	}

	questions := make([]*domain.ReviewQuestion, len(vocabularyIDs))
	batch := &pgx.Batch{}
	for i, vocabID := range vocabularyIDs {
		q := &domain.ReviewQuestion{
			ID:           uuid.New(),
			SessionID:    created.ID,
			VocabularyID: vocabID,
			// Spread creation timestamps so ORDER BY created_at keeps
			// sampling order even at microsecond resolution.
			CreatedAt: session.CreatedAt.Add(time.Duration(i) * time.Microsecond),
		}
		questions[i] = q
		batch.Queue(insertQuestionSQL, q.ID, q.SessionID, q.VocabularyID, q.CreatedAt)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range vocabularyIDs {
		if _, err := results.Exec(); err != nil {
			return nil, nil, postgres.MapError(err, "review_question", created.ID)
		}
	}

	return created, questions, nil
}

// GetSession returns a session by id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSessionSQL, id)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_session", id)
	}

	return session, nil
}

// ListSessions returns the most recent sessions, newest first, capped at limit.
func (r *Repo) ListSessions(ctx context.Context, limit int) ([]*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSessionsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list review sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.ReviewSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review sessions: %w", err)
	}

	return sessions, nil
}

// IncrementCorrect bumps the session's correct-answer counter by one using a
// single atomic statement.
func (r *Repo) IncrementCorrect(ctx context.Context, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, incrementCorrectSQL, sessionID)
	if err != nil {
		return postgres.MapError(err, "review_session", sessionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review_session %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

// GetQuestion returns a question scoped to its session.
// Returns domain.ErrNotFound if the question is absent from that session.
func (r *Repo) GetQuestion(ctx context.Context, sessionID, questionID uuid.UUID) (*domain.ReviewQuestion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getQuestionSQL, questionID, sessionID)

	q, err := scanQuestion(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_question", questionID)
	}

	return q, nil
}

// ListQuestions returns all questions of a session in creation order.
func (r *Repo) ListQuestions(ctx context.Context, sessionID uuid.UUID) ([]*domain.ReviewQuestion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listQuestionsSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list review questions: %w", err)
	}
	defer rows.Close()

	questions := []*domain.ReviewQuestion{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review questions: %w", err)
	}

	return questions, nil
}

// MarkAnswered stores the raw (trimmed) user inputs, the verdict, and the
// answered timestamp, exactly once. Returns domain.ErrConflict if the question was
// already answered, including when a concurrent submission won the race.
func (r *Repo) MarkAnswered(ctx context.Context, questionID uuid.UUID, userWord, userSynonyms *string, isCorrect bool, answeredAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markAnsweredSQL, questionID, userWord, userSynonyms, isCorrect, answeredAt)
	if err != nil {
		return postgres.MapError(err, "review_question", questionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review_question %s already answered: %w", questionID, domain.ErrConflict)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.ReviewSession, error) {
	var s domain.ReviewSession
	err := row.Scan(&s.ID, &s.TotalQuestions, &s.CorrectAnswers, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanQuestion(row pgx.Row) (*domain.ReviewQuestion, error) {
	var q domain.ReviewQuestion
	err := row.Scan(
		&q.ID, &q.SessionID, &q.VocabularyID,
		&q.UserWord, &q.UserSynonyms, &q.IsCorrect, &q.AnsweredAt,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
