// internal/workers/research/competitor-research/config.go
package competitorresearch

import "time"

type Config struct {
	// SerperAPIKey enables the live search source when set.
	SerperAPIKey  string
	SerperBaseURL string
	// CompetitorIndex is the Elasticsearch catalog index.
	CompetitorIndex string
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		SerperBaseURL:   "https://google.serper.dev",
		CompetitorIndex: "competitors",
		Timeout:         10 * time.Second,
	}
}
