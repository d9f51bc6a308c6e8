package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
)

// CreateInput holds the parameters for creating a library entry.
type CreateInput struct {
	Word          string
	Meaning       string
	PartOfSpeech  string
	ExampleSource string
	ExampleTarget string
	ImageURL      string
	Synonyms      []string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if strings.TrimSpace(i.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for a partial update. Nil pointers mean
// "leave unchanged"; a non-nil Synonyms slice replaces the whole set.
type UpdateInput struct {
	ID            uuid.UUID
	Word          *string
	Meaning       *string
	PartOfSpeech  *string
	ExampleSource *string
	ExampleTarget *string
	ImageURL      *string
	Synonyms      []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Word != nil && strings.TrimSpace(*i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "must not be empty"})
	}
	if i.Meaning != nil && strings.TrimSpace(*i.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds search and pagination parameters for library listings.
// Page is 1-based; Limit 0 means "use the configured default".
type ListInput struct {
	Word    string
	Meaning string
	Page    int
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
