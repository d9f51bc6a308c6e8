package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vocabulary is a single library entry: an English word with its Vietnamese
// meaning and an owned, unordered set of synonyms. The word is stored
// normalized (NormalizeText) and is unique across the library.
type Vocabulary struct {
	ID            uuid.UUID
	Word          string
	Meaning       string
	PartOfSpeech  *string
	ExampleSource *string
	ExampleTarget *string
	ImageURL      *string
	Synonyms      []Synonym
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SynonymWords returns the synonym texts in storage order.
func (v *Vocabulary) SynonymWords() []string {
	words := make([]string, len(v.Synonyms))
	for i, s := range v.Synonyms {
		words[i] = s.Word
	}
	return words
}

// Synonym belongs to exactly one Vocabulary. The set is replaced wholesale on
// edit and removed by cascade on delete, so it is always consistent with the
// latest edit.
type Synonym struct {
	ID           uuid.UUID
	VocabularyID uuid.UUID
	Word         string
}

// VocabularyUpdate carries the fields of a partial update. Nil means "leave
// unchanged"; a pointer to an empty string clears an optional column.
// Synonyms, when non-nil, replaces the whole synonym set.
type VocabularyUpdate struct {
	Word          *string
	Meaning       *string
	PartOfSpeech  *string
	ExampleSource *string
	ExampleTarget *string
	ImageURL      *string
	Synonyms      []string
}

// VocabularyFilter contains search/pagination parameters for library listings.
// Word and Meaning are case-insensitive substring filters.
type VocabularyFilter struct {
	Word    *string
	Meaning *string
	Limit   int
	Offset  int
}
