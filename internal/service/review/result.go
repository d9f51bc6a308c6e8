package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/review/grading"
)

// QuestionPrompt is what the quiz UI needs to ask one question: the meaning
// and optional hints, never the word or synonyms being tested.
type QuestionPrompt struct {
	QuestionID    uuid.UUID
	VocabularyID  uuid.UUID
	Meaning       string
	PartOfSpeech  *string
	ExampleSource *string
	ExampleTarget *string
	ImageURL      *string
}

// CreateSessionResult is the outcome of starting a session.
type CreateSessionResult struct {
	Session   *domain.ReviewSession
	Questions []QuestionPrompt
}

// CheckAnswerResult is the structured grade for one answered question.
type CheckAnswerResult struct {
	IsCorrect       bool
	WordCorrect     bool
	SynonymsCorrect bool
	CorrectWord     string
	UserWord        string
	CorrectSynonyms []string
	UserSynonyms    []string
	MissingSynonyms []string
	ExtraSynonyms   []string
}

// SessionSummary is one row of the session history list.
type SessionSummary struct {
	Session         *domain.ReviewSession
	ScorePercentage int
}

// UserAnswer is the stored answer of one question, parsed for display.
type UserAnswer struct {
	Word     *string
	Synonyms []string
}

// QuestionResult pairs a question with the vocabulary it tested.
type QuestionResult struct {
	QuestionID uuid.UUID
	Vocabulary *domain.Vocabulary
	UserAnswer UserAnswer
	IsCorrect  *bool
	AnsweredAt *time.Time
}

// SessionDetail is the full read model of one session, score included.
type SessionDetail struct {
	Session         *domain.ReviewSession
	Status          domain.SessionStatus
	ScorePercentage int
	Questions       []QuestionResult
}

func summarize(s *domain.ReviewSession) SessionSummary {
	return SessionSummary{
		Session:         s,
		ScorePercentage: grading.ScorePercentage(s.CorrectAnswers, s.TotalQuestions),
	}
}
