package review

import (
	"context"
	"fmt"
)

// ListSessions returns the most recent sessions, newest first, capped at the
// configured history size, each with its derived score.
func (s *Service) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	sessions, err := s.reviews.ListSessions(ctx, s.cfg.SessionListCap)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	summaries := make([]SessionSummary, len(sessions))
	for i, sess := range sessions {
		summaries[i] = summarize(sess)
	}

	return summaries, nil
}
