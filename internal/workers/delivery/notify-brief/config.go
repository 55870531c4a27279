// internal/workers/delivery/notify-brief/config.go
package notifybrief

import (
	"fmt"
	"time"
)

const (
	ChannelSMTP = "smtp"
	ChannelSES  = "ses"
)

type Config struct {
	Enabled      bool          `mapstructure:"enabled"`
	Channel      string        `mapstructure:"channel"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SMTPHost     string        `mapstructure:"smtp_host"`
	SMTPPort     int           `mapstructure:"smtp_port"`
	SMTPUsername string        `mapstructure:"smtp_username"`
	SMTPPassword string        `mapstructure:"smtp_password"`
	AWSRegion    string        `mapstructure:"aws_region"`
	From         string        `mapstructure:"from"`
	Recipients   []string      `mapstructure:"recipients"`
	// SNSTopicARN receives a "brief ready" event when set.
	SNSTopicARN string `mapstructure:"sns_topic_arn"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:  false,
		Channel:  ChannelSMTP,
		Timeout:  30 * time.Second,
		SMTPPort: 587,
		From:     "briefs@example.com",
	}
}

func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.From == "" {
		return fmt.Errorf("from address is required")
	}
	switch c.Channel {
	case ChannelSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required")
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("smtp_port must be between 1 and 65535")
		}
	case ChannelSES:
		if c.AWSRegion == "" {
			return fmt.Errorf("aws_region is required")
		}
	default:
		return fmt.Errorf("unknown channel %q", c.Channel)
	}
	return nil
}
