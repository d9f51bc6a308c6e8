package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus describes where a review session is in its lifecycle.
// Transitions are strictly monotonic: Created -> InProgress -> Completed.
type SessionStatus string

const (
	SessionStatusCreated    SessionStatus = "CREATED"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
)

// ReviewSession is one quiz: a fixed set of questions sampled at creation time
// and a running correct-answer counter. The counter is incremented at most
// once per question and never decremented, so CorrectAnswers never exceeds
// TotalQuestions.
type ReviewSession struct {
	ID             uuid.UUID
	TotalQuestions int
	CorrectAnswers int
	CreatedAt      time.Time
}

// ReviewQuestion references the vocabulary entry it was sampled from.
// It transitions exactly once from unanswered to answered; the verdict, once
// set, is never recomputed.
type ReviewQuestion struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	VocabularyID uuid.UUID
	UserWord     *string
	UserSynonyms *string
	IsCorrect    *bool
	AnsweredAt   *time.Time
	CreatedAt    time.Time
}

// Answered reports whether the question has been graded.
func (q *ReviewQuestion) Answered() bool {
	return q.AnsweredAt != nil
}

// Status derives the session lifecycle state from the number of answered
// questions. It is a view over (answered, total), not stored state.
func (s *ReviewSession) Status(answered int) SessionStatus {
	switch {
	case answered == 0:
		return SessionStatusCreated
	case answered < s.TotalQuestions:
		return SessionStatusInProgress
	default:
		return SessionStatusCompleted
	}
}
