// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration for the NATS client
type Config struct {
	// URL is the NATS server URL
	URL string `env:"NATS_URL" envDefault:"nats://localhost:4222" yaml:"url"`

	// Timeout bounds connection attempts and KV lookups
	Timeout time.Duration `env:"NATS_TIMEOUT" envDefault:"10s" yaml:"timeout"`

	// MaxReconnect is the maximum number of reconnection attempts
	MaxReconnect int `env:"NATS_MAX_RECONNECT" envDefault:"3" yaml:"max_reconnect"`

	// ReconnectWait is the wait time between reconnection attempts
	ReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" envDefault:"2s" yaml:"reconnect_wait"`

	// SessionBucket is the KV bucket holding session state
	SessionBucket string `env:"NATS_SESSION_BUCKET" envDefault:"donate-sessions" yaml:"session_bucket"`

	// BucketAttempts is the number of attempts made to open the session bucket
	BucketAttempts int `env:"NATS_BUCKET_ATTEMPTS" envDefault:"3" yaml:"bucket_attempts"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		Timeout:        10 * time.Second,
		MaxReconnect:   3,
		ReconnectWait:  2 * time.Second,
		SessionBucket:  "donate-sessions",
		BucketAttempts: 3,
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
