// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import "time"

// Config holds the configuration for the HTTP client
type Config struct {
	// Timeout is the per-request timeout
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests.
	// Zero disables retries.
	MaxRetries int

	// RetryDelay is the base delay between retry attempts
	RetryDelay time.Duration

	// RetryBackoff enables exponential backoff with jitter
	RetryBackoff bool

	// MaxDelay caps the backoff delay
	MaxDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		MaxRetries:   0,
		RetryDelay:   500 * time.Millisecond,
		RetryBackoff: true,
		MaxDelay:     30 * time.Second,
	}
}
