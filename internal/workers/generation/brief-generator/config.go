// internal/workers/generation/brief-generator/config.go
package briefgenerator

import "time"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderHTTP   = "http"
)

type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

func LoadConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.0-flash",
		Timeout:     90 * time.Second,
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
