// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service contains the donation workflow: campaign lookup, donor
// identity, donation submission and the per-view snapshot owners.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// CampaignRepository fetches campaign snapshots from the remote campaign service
type CampaignRepository interface {
	// ListCampaigns retrieves every campaign
	ListCampaigns(ctx context.Context) ([]*model.Campaign, error)
	// GetCampaign retrieves one campaign by ID
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
}

// campaignRepositoryOption defines a function type for setting options on the repository
type campaignRepositoryOption func(*campaignRepository)

// WithCampaignReader sets the campaign reader
func WithCampaignReader(reader port.CampaignReader) campaignRepositoryOption {
	return func(r *campaignRepository) {
		r.reader = reader
	}
}

type campaignRepository struct {
	reader port.CampaignReader
}

// NewCampaignRepository creates a new campaign repository using the option pattern
func NewCampaignRepository(opts ...campaignRepositoryOption) CampaignRepository {
	r := &campaignRepository{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListCampaigns fetches the full campaign list. Every call reaches the service.
func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	slog.DebugContext(ctx, "executing list campaigns use case")

	if r.reader == nil {
		return nil, errs.NewTransport("campaign service is not configured")
	}

	campaigns, err := r.reader.ListCampaigns(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list campaigns", "error", err)
		return nil, readError(err)
	}

	slog.DebugContext(ctx, "campaigns listed successfully", "count", len(campaigns))
	return campaigns, nil
}

// GetCampaign lists the campaigns and picks the one with the given ID. The
// service has no single-campaign endpoint.
func (r *campaignRepository) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	id = strings.TrimSpace(id)
	slog.DebugContext(ctx, "executing get campaign use case", "campaign_id", id)

	if id == "" {
		return nil, errs.NewNotFound("campaign ID is empty")
	}

	campaigns, err := r.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range campaigns {
		if c != nil && c.ID == id {
			slog.DebugContext(ctx, "campaign retrieved successfully",
				"campaign_id", id,
				"amount_raised", c.AmountRaised,
			)
			return c, nil
		}
	}

	slog.WarnContext(ctx, "campaign not found in campaign list",
		"campaign_id", id,
		"count", len(campaigns),
	)
	return nil, errs.NewNotFound(fmt.Sprintf("campaign %s not found", id))
}

// readError keeps the typed read failures and reports anything else as a
// transport failure.
func readError(err error) error {
	var (
		transport errs.Transport
		decode    errs.Decode
		notFound  errs.NotFound
	)
	switch {
	case errors.As(err, &transport), errors.As(err, &decode), errors.As(err, &notFound):
		return err
	default:
		return errs.NewTransport("failed to fetch campaigns", err)
	}
}
