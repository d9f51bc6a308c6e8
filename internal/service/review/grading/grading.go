// Package grading implements the pure answer-checking engine for review
// sessions: input normalization, synonym parsing, order-insensitive set
// comparison, the per-question verdict, and score derivation. Everything in
// this package is deterministic and side-effect free; persistence of grades
// belongs to the review service.
package grading

import (
	"math"
	"strings"

	"github.com/toevol/toevol-backend/internal/domain"
)

// SetComparison is the result of comparing a user's synonym list against the
// canonical one. Missing and Matching follow the expected list's order, Extra
// follows the actual list's order; all elements are normalized.
type SetComparison struct {
	Missing  []string
	Extra    []string
	Matching []string
	AllMatch bool
}

// Result is the verdict for a single answered question.
type Result struct {
	WordCorrect     bool
	SynonymsCorrect bool
	IsCorrect       bool
	Synonyms        SetComparison
}

// ParseSynonyms splits a comma-separated synonyms string into normalized
// tokens. Empty or whitespace-only input yields an empty list. Empty pieces
// produced by stray commas are dropped; duplicates are kept (they collapse
// later under set semantics in CompareSets).
func ParseSynonyms(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := domain.NormalizeText(p); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// CompareSets compares two synonym lists ignoring order, case, and
// surrounding whitespace. Duplicates collapse into set membership.
//
// AllMatch is true iff nothing expected is missing: extra answers never cause
// a mismatch, because a user who knows additional correct synonyms should not
// be penalized. Only omissions count against the answer.
func CompareSets(expected, actual []string) SetComparison {
	expectedNorm := normalizeAll(expected)
	actualNorm := normalizeAll(actual)

	expectedSet := toSet(expectedNorm)
	actualSet := toSet(actualNorm)

	cmp := SetComparison{
		Missing:  []string{},
		Extra:    []string{},
		Matching: []string{},
	}

	for _, e := range expectedNorm {
		if actualSet[e] {
			cmp.Matching = append(cmp.Matching, e)
		} else {
			cmp.Missing = append(cmp.Missing, e)
		}
	}
	for _, a := range actualNorm {
		if !expectedSet[a] {
			cmp.Extra = append(cmp.Extra, a)
		}
	}

	cmp.AllMatch = len(cmp.Missing) == 0
	return cmp
}

// Grade checks one typed answer against the canonical word and synonym list.
//
// The word must match exactly after normalization; there is no fuzzy
// tolerance. The synonym dimension is satisfied when no canonical synonym is
// missing, so an entry without synonyms is graded on the word alone.
func Grade(canonicalWord string, canonicalSynonyms []string, userWord, userSynonyms string) Result {
	wordCorrect := domain.NormalizeText(userWord) == domain.NormalizeText(canonicalWord)

	cmp := CompareSets(canonicalSynonyms, ParseSynonyms(userSynonyms))

	return Result{
		WordCorrect:     wordCorrect,
		SynonymsCorrect: cmp.AllMatch,
		IsCorrect:       wordCorrect && cmp.AllMatch,
		Synonyms:        cmp,
	}
}

// ScorePercentage derives the session score as an integer percentage,
// rounded half away from zero. A session with zero questions scores 0.
// The value is recomputable at any time from (correct, total).
func ScorePercentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func normalizeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = domain.NormalizeText(s)
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
