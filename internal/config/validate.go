package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		return fmt.Errorf("auth.jwt_issuer is required")
	}

	if c.Database.LockTimeout < 0 {
		return fmt.Errorf("database.lock_timeout must be >= 0 (got %v)", c.Database.LockTimeout)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.GraphQL.Enabled && c.GraphQL.ComplexityLimit <= 0 {
		return fmt.Errorf("graphql.complexity_limit must be > 0 (got %d)", c.GraphQL.ComplexityLimit)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (b *BoardConfig) validate() error {
	if b.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be > 0 (got %d)", b.MaxTitleLength)
	}
	if b.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", b.MaxContentLength)
	}
	if b.MaxTagLength <= 0 {
		return fmt.Errorf("max_tag_length must be > 0 (got %d)", b.MaxTagLength)
	}
	if b.MaxBountyPoints < 0 {
		return fmt.Errorf("max_bounty_points must be >= 0 (got %d)", b.MaxBountyPoints)
	}
	if b.ViewDedupSize <= 0 {
		return fmt.Errorf("view_dedup_size must be > 0 (got %d)", b.ViewDedupSize)
	}
	if b.ViewDedupWindow <= 0 {
		return fmt.Errorf("view_dedup_window must be > 0 (got %v)", b.ViewDedupWindow)
	}
	if b.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("hard_delete_retention_days must be > 0 (got %d)", b.HardDeleteRetentionDays)
	}
	if b.PurgeBatchSize <= 0 || b.PurgeBatchSize > 1000 {
		return fmt.Errorf("purge_batch_size must be in 1..1000 (got %d)", b.PurgeBatchSize)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.Requests <= 0 {
		return fmt.Errorf("requests must be > 0 (got %d)", r.Requests)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %v)", r.Window)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
