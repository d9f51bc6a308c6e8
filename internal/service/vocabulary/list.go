package vocabulary

import (
	"context"
	"fmt"

	"github.com/toevol/toevol-backend/internal/domain"
)

// ListResult is one page of the library plus pagination metadata.
type ListResult struct {
	Items      []*domain.Vocabulary
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// List searches the library with optional case-insensitive substring filters
// on word and meaning, newest entries first. Page defaults to 1 and the page
// size to the configured default, capped at the configured maximum.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit == 0 {
		limit = s.pagination.DefaultLimit
	}
	if limit > s.pagination.MaxLimit {
		limit = s.pagination.MaxLimit
	}

	filter := domain.VocabularyFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if input.Word != "" {
		filter.Word = &input.Word
	}
	if input.Meaning != "" {
		filter.Meaning = &input.Meaning
	}

	items, total, err := s.vocabs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &ListResult{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
