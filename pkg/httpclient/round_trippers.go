// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries a per-request identifier to the remote service
const RequestIDHeader = "X-Request-Id"

// RequestIDRoundTripper stamps every outgoing request with a fresh request ID
// unless the caller already set one.
type RequestIDRoundTripper struct{}

// RoundTrip sets the request ID header and forwards the request
func (RequestIDRoundTripper) RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return next(req)
}

// RateLimitRoundTripper throttles outgoing requests with a token bucket so a
// burst of page loads cannot hammer the remote service.
type RateLimitRoundTripper struct {
	limiter *rate.Limiter
}

// NewRateLimitRoundTripper allows r requests per second with the given burst
func NewRateLimitRoundTripper(r rate.Limit, burst int) *RateLimitRoundTripper {
	return &RateLimitRoundTripper{limiter: rate.NewLimiter(r, burst)}
}

// RoundTrip waits for a token, honouring the request context, then forwards
func (rt *RateLimitRoundTripper) RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return next(req)
}
