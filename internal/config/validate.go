package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Credits.Default < 0 {
		return fmt.Errorf("credits.default must be >= 0 (got %d)", c.Credits.Default)
	}
	if c.Credits.CostPerQuery < 1 {
		return fmt.Errorf("credits.cost_per_query must be >= 1 (got %d)", c.Credits.CostPerQuery)
	}

	if c.History.Capacity < 1 {
		return fmt.Errorf("history.capacity must be >= 1 (got %d)", c.History.Capacity)
	}

	if c.Generation.MaxTokens < 256 {
		return fmt.Errorf("generation.max_tokens must be >= 256 (got %d)", c.Generation.MaxTokens)
	}
	if c.Generation.KeywordsPerQuery < 1 || c.Generation.KeywordsPerQuery > 50 {
		return fmt.Errorf("generation.keywords_per_query must be between 1 and 50 (got %d)", c.Generation.KeywordsPerQuery)
	}
	if c.Generation.PageFetchTimeout <= 0 {
		return fmt.Errorf("generation.page_fetch_timeout must be > 0 (got %v)", c.Generation.PageFetchTimeout)
	}

	return nil
}
