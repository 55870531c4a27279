// internal/workers/research/trends-research/config.go
package trendsresearch

type Config struct {
	// Timeframe labels the trend window reported in logs.
	Timeframe string
}

func LoadConfig() *Config {
	return &Config{Timeframe: "12m"}
}
