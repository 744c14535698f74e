package collector

import (
	"fmt"

	"github.com/mhollis/redditlog/internal/config"
	"github.com/mhollis/redditlog/internal/domain"
)

// New selects the correct implementation for the configured mode.
func New(cfg *config.Config) (domain.Collector, error) {
	switch cfg.Mode {
	case "api":
		return NewAPIClient(cfg.Credentials)
	case "public":
		return NewPublicClient(cfg.Credentials.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s (use 'api', 'public', or 'mock')", cfg.Mode)
	}
}
