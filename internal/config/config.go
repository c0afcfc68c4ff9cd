package config

import (
	"fmt"
	"os"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	DiscordWebhookURL string
	ResultContent     string
	ResultFile        string
	ScheduleCron      string
	RequestTimeout    time.Duration
	ProxyURL          string
	LogLevel          string
}

const (
	defaultWebhookURL = ""
	defaultCron       = "" // empty means one-shot
	defaultTimeout    = 0  // no client timeout
	defaultLogLevel   = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DiscordWebhookURL: getenvDefault("DISCORD_WEBHOOK_URL", defaultWebhookURL),
		ResultContent:     os.Getenv("RESULT_CONTENT"),
		ResultFile:        os.Getenv("RESULT_FILE"),
		ScheduleCron:      getenvDefault("SCHEDULE_CRON", defaultCron),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		ProxyURL:          os.Getenv("HTTPS_PROXY_URL"),
		LogLevel:          getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.DiscordWebhookURL == "" {
		return nil, fmt.Errorf("DISCORD_WEBHOOK_URL is required")
	}

	if cfg.ScheduleCron != "" && cfg.ResultFile == "" {
		return nil, fmt.Errorf("RESULT_FILE is required when SCHEDULE_CRON is set")
	}

	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// Watch reports whether the results file should be polled on a schedule.
func (c *Config) Watch() bool {
	return c.ScheduleCron != ""
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
