package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "required")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("ValidationError should unwrap to ErrValidation")
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	single := NewValidationError("number_of_questions", "must be at least 1")
	want := "validation: number_of_questions: must be at least 1"
	if single.Error() != want {
		t.Errorf("Error() = %q, want %q", single.Error(), want)
	}

	multi := NewValidationErrors([]FieldError{
		{Field: "word", Message: "required"},
		{Field: "meaning", Message: "required"},
	})
	if multi.Error() != "validation: 2 errors" {
		t.Errorf("Error() = %q, want %q", multi.Error(), "validation: 2 errors")
	}
}

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("vocabulary %s: %w", "abc", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("wrapped sentinel should satisfy errors.Is")
	}
}
