// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package campaignapi implements the campaign ports against the remote campaign service HTTP API.
package campaignapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
	"github.com/farhanmansurii/Donate-frontend/pkg/httpclient"
)

// Client talks to the remote campaign service
type Client struct {
	config     Config
	baseURL    *url.URL
	httpClient *httpclient.Client
}

// Ensure Client implements the campaign service ports
var _ port.CampaignService = (*Client)(nil)

// NewClient creates a new campaign service client with the given configuration
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValidation("campaign service base URL is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errs.NewValidation(fmt.Sprintf("invalid campaign service base URL %q", cfg.BaseURL), err)
	}

	httpConfig := httpclient.DefaultConfig()
	httpConfig.Timeout = cfg.Timeout
	httpConfig.MaxRetries = cfg.MaxRetries
	httpConfig.RetryDelay = cfg.RetryDelay

	client := &Client{
		config:     cfg,
		baseURL:    baseURL,
		httpClient: httpclient.NewClient(httpConfig),
	}

	client.httpClient.AddRoundTripper(httpclient.RequestIDRoundTripper{})
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		client.httpClient.AddRoundTripper(httpclient.NewRateLimitRoundTripper(rate.Limit(cfg.RateLimit), burst))
	}

	slog.DebugContext(context.Background(), "campaign service client initialized",
		"base_url", baseURL.String(),
		"max_retries", cfg.MaxRetries,
		"rate_limit", cfg.RateLimit,
	)

	return client, nil
}

// ListCampaigns fetches every campaign from the service
func (c *Client) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	slog.DebugContext(ctx, "listing campaigns from campaign service")

	resp, err := c.httpClient.Request(ctx, http.MethodGet, c.endpoint(constants.CampaignsPath), nil, nil)
	if err != nil {
		return nil, MapReadError(ctx, err)
	}

	var objects []CampaignObject
	if err := json.Unmarshal(resp.Body, &objects); err != nil {
		slog.ErrorContext(ctx, "failed to decode campaign list",
			"error", err,
			"body_size", len(resp.Body),
		)
		return nil, errs.NewDecode("campaign list could not be decoded", err)
	}

	campaigns := make([]*model.Campaign, 0, len(objects))
	for i, obj := range objects {
		if obj.identifier() == "" {
			slog.ErrorContext(ctx, "campaign without identifier in list", "index", i)
			return nil, errs.NewDecode(fmt.Sprintf("campaign at index %d has no identifier", i))
		}
		campaigns = append(campaigns, obj.toModel())
	}

	slog.DebugContext(ctx, "campaigns listed from campaign service",
		"count", len(campaigns),
	)

	return campaigns, nil
}

// Donate records a donation against a campaign. It is sent exactly once.
func (c *Client) Donate(ctx context.Context, campaignID string, donation model.Donation) error {
	slog.InfoContext(ctx, "sending donation to campaign service",
		"campaign_id", campaignID,
		"amount", donation.Amount,
	)

	body, err := json.Marshal(DonateRequest{
		DonorName: donation.DonorName,
		Amount:    donation.Amount,
	})
	if err != nil {
		return errs.NewSubmission("failed to encode donation", err)
	}

	_, err = c.httpClient.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    c.endpoint(fmt.Sprintf(constants.DonatePathFormat, url.PathEscape(campaignID))),
		Headers: map[string]string{
			"Content-Type":                 constants.ContentTypeJSON,
			constants.IdempotencyKeyHeader: uuid.NewString(),
		},
		Body:    body,
		NoRetry: true,
	})
	if err != nil {
		return MapWriteError(ctx, err)
	}

	slog.InfoContext(ctx, "donation accepted by campaign service",
		"campaign_id", campaignID,
	)

	return nil
}

// IsReady checks if the campaign service is reachable
func (c *Client) IsReady(ctx context.Context) error {
	_, err := c.httpClient.Request(ctx, http.MethodGet, c.endpoint(constants.CampaignsPath), nil, nil)
	if err != nil {
		return fmt.Errorf("campaign service unreachable: %w", MapReadError(ctx, err))
	}
	return nil
}

// endpoint joins an already escaped path onto the configured base URL
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.baseURL.String(), "/") + path
}
