// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package campaignapi

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration for the campaign service client
type Config struct {
	// BaseURL is the campaign service base URL
	BaseURL string `env:"CAMPAIGN_API_BASE_URL" envDefault:"http://localhost:3001" yaml:"base_url"`

	// Timeout is the HTTP client timeout for requests
	Timeout time.Duration `env:"CAMPAIGN_API_TIMEOUT" envDefault:"10s" yaml:"timeout"`

	// MaxRetries is the number of retries for campaign reads. Donations are
	// never retried.
	MaxRetries int `env:"CAMPAIGN_API_MAX_RETRIES" envDefault:"0" yaml:"max_retries"`

	// RetryDelay is the base delay between read retries
	RetryDelay time.Duration `env:"CAMPAIGN_API_RETRY_DELAY" envDefault:"500ms" yaml:"retry_delay"`

	// RateLimit is the number of requests per second sent to the service; zero disables throttling
	RateLimit float64 `env:"CAMPAIGN_API_RATE_LIMIT" envDefault:"10" yaml:"rate_limit"`

	// RateBurst is the number of requests allowed in a burst
	RateBurst int `env:"CAMPAIGN_API_RATE_BURST" envDefault:"5" yaml:"rate_burst"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:3001",
		Timeout:    10 * time.Second,
		MaxRetries: 0,
		RetryDelay: 500 * time.Millisecond,
		RateLimit:  10,
		RateBurst:  5,
	}
}

// NewConfigFromEnv creates a Config from environment variables
func NewConfigFromEnv() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}
