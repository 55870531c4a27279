// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig              `mapstructure:"app"`
	Server        ServerConfig           `mapstructure:"server"`
	Camunda       CamundaConfig          `mapstructure:"camunda"`
	Database      DatabaseConfig         `mapstructure:"database"`
	Research      ResearchConfig         `mapstructure:"research"`
	Generator     GeneratorConfig        `mapstructure:"generator"`
	Render        RenderConfig           `mapstructure:"render"`
	Notifications NotificationConfig     `mapstructure:"notifications"`
	Logging       LoggingConfig          `mapstructure:"logging"`
	Defaults      map[string]interface{} `mapstructure:"defaults"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig drives the HTTP surface.
type ServerConfig struct {
	Address        string  `mapstructure:"address"`
	RequestTimeout int     `mapstructure:"request_timeout"` // milliseconds
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	CORSOrigin     string  `mapstructure:"cors_origin"`
}

// CamundaConfig is optional; an empty broker address disables the job worker.
type CamundaConfig struct {
	BrokerAddress string `mapstructure:"broker_address"`
	JobType       string `mapstructure:"job_type"`
	MaxJobsActive int    `mapstructure:"max_jobs_active"`
	Timeout       int    `mapstructure:"timeout"` // milliseconds
}

// Enabled reports whether a broker is configured.
func (c CamundaConfig) Enabled() bool {
	return c.BrokerAddress != ""
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// Enabled reports whether the audience profile store should use Postgres.
func (p PostgresConfig) Enabled() bool {
	return p.Host != "" && p.Database != ""
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

func (e ElasticsearchConfig) Enabled() bool {
	return len(e.Addresses) > 0
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// --- Domain sections ---

// ResearchConfig holds the research provider settings.
type ResearchConfig struct {
	CacheTTL        int    `mapstructure:"cache_ttl"` // seconds, 0 disables caching
	Timeout         int    `mapstructure:"timeout"`   // milliseconds
	SerperAPIKey    string `mapstructure:"serper_api_key"`
	SerperBaseURL   string `mapstructure:"serper_base_url"`
	CompetitorIndex string `mapstructure:"competitor_index"`
}

// GeneratorConfig selects and configures the text generation backend.
type GeneratorConfig struct {
	Provider    string  `mapstructure:"provider"` // gemini | openai | http
	Model       string  `mapstructure:"model"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type RenderConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	OutputDir string `mapstructure:"output_dir"`
	Brand     string `mapstructure:"brand"`
}

// NotificationConfig holds the optional brief delivery channels.
type NotificationConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	Recipients []string `mapstructure:"recipients"`
	FromEmail  string   `mapstructure:"from_email"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"smtp"`

	AWS struct {
		Region      string `mapstructure:"region"`
		SESEnabled  bool   `mapstructure:"ses_enabled"`
		SNSTopicARN string `mapstructure:"sns_topic_arn"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
