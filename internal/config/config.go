package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings, populated from UV_-prefixed environment
// variables with defaults applied where unset.
type Config struct {
	FeedURL      string
	Location     string
	PollInterval time.Duration
	FetchTimeout time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka observation publishing (feature-flagged via UV_KAFKA_ENABLED).
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("UV")
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		FeedURL:      v.GetString("feed_url"),
		Location:     v.GetString("location"),
		PollInterval: v.GetDuration("poll_interval"),
		FetchTimeout: v.GetDuration("fetch_timeout"),

		HTTPAddr:        v.GetString("http_addr"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),

		KafkaEnabled: v.GetBool("kafka_enabled"),
		KafkaBrokers: parseBrokers(v.GetString("kafka_brokers")),
		KafkaTopic:   strings.TrimSpace(v.GetString("kafka_topic")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("feed_url", "https://uvdata.arpansa.gov.au/xml/uvvalues.xml")
	v.SetDefault("location", "Canberra")
	v.SetDefault("poll_interval", "5m")
	v.SetDefault("fetch_timeout", "10s")

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("kafka_enabled", false)
	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_topic", "uv-observations")
}

func (c *Config) validate() error {
	if c.FeedURL == "" {
		return errors.New("UV_FEED_URL is required")
	}
	if c.Location == "" {
		return errors.New("UV_LOCATION is required")
	}
	if c.PollInterval <= 0 {
		return errors.New("UV_POLL_INTERVAL must be positive")
	}
	if c.FetchTimeout <= 0 {
		return errors.New("UV_FETCH_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("UV_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.KafkaEnabled {
		if len(c.KafkaBrokers) == 0 {
			return errors.New("UV_KAFKA_BROKERS is required when Kafka publishing is enabled")
		}
		if c.KafkaTopic == "" {
			return errors.New("UV_KAFKA_TOPIC is required when Kafka publishing is enabled")
		}
	}
	return nil
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
