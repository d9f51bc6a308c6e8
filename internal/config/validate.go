package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Review.MaxQuestions < 1 {
		return fmt.Errorf("review.max_questions must be >= 1 (got %d)", c.Review.MaxQuestions)
	}
	if c.Review.SessionListCap < 1 {
		return fmt.Errorf("review.session_list_cap must be >= 1 (got %d)", c.Review.SessionListCap)
	}
	if c.Review.StorageTimeout <= 0 {
		return fmt.Errorf("review.storage_timeout must be > 0 (got %v)", c.Review.StorageTimeout)
	}

	if c.Pagination.DefaultLimit < 1 {
		return fmt.Errorf("pagination.default_limit must be >= 1 (got %d)", c.Pagination.DefaultLimit)
	}
	if c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("pagination.max_limit must be >= default_limit (got %d < %d)",
			c.Pagination.MaxLimit, c.Pagination.DefaultLimit)
	}

	return nil
}
