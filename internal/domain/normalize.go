package domain

import "strings"

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase (locale-independent)
//
// Diacritics, hyphens, apostrophes, and inner spacing are preserved.
// The transformation is idempotent.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
