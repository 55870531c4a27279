// internal/workers/research/audience-research/config.go
package audienceresearch

import "time"

type Config struct {
	// StoreTimeout bounds the profile store query.
	StoreTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{StoreTimeout: 3 * time.Second}
}
