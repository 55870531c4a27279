// internal/workers/generation/brief-formatter/config.go
package briefformatter

import "creative-brief/internal/models"

type Config struct {
	// DefaultProduct replaces the title placeholder when the stakeholder
	// input carries no company_name.
	DefaultProduct string
}

func DefaultConfig() *Config {
	return &Config{
		DefaultProduct: models.DefaultProductName,
	}
}
