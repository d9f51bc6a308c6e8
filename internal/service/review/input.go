package review

import (
	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// CreateSessionInput holds the parameters for starting a review session.
type CreateSessionInput struct {
	NumberOfQuestions int
}

// Validate checks all fields and collects all errors. The upper bound is a
// configured limit, so it is enforced by the service, not here.
func (i *CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.NumberOfQuestions < 1 {
		errs = append(errs, domain.FieldError{Field: "number_of_questions", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CheckAnswerInput holds one typed answer for one question of a session.
type CheckAnswerInput struct {
	SessionID    uuid.UUID
	QuestionID   uuid.UUID
	UserWord     string
	UserSynonyms string
}

// Validate checks all fields and collects all errors.
func (i *CheckAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
