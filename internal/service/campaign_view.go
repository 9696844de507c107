// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	logging "github.com/farhanmansurii/Donate-frontend/pkg/log"
	"github.com/farhanmansurii/Donate-frontend/pkg/progress"
)

// CampaignView owns the cached campaign snapshot of one viewing context.
// The snapshot is only ever replaced as a whole. Once Close is called,
// results of fetches and submissions still in flight are dropped.
type CampaignView struct {
	campaignID string
	repo       CampaignRepository
	controller DonationController
	identity   DonorIdentityResolver

	// mu orders snapshot writes against Close
	mu        sync.Mutex
	closed    atomic.Bool
	snapshot  atomic.Pointer[model.Campaign]
	donorName atomic.Pointer[string]
}

// NewCampaignView creates the view of one campaign
func NewCampaignView(campaignID string, repo CampaignRepository, controller DonationController, identity DonorIdentityResolver) *CampaignView {
	if identity == nil {
		identity = NewDonorIdentityResolver(nil)
	}
	return &CampaignView{
		campaignID: campaignID,
		repo:       repo,
		controller: controller,
		identity:   identity,
	}
}

// Load fetches the campaign and resolves the default donor name concurrently.
// On failure the previous snapshot, if any, is kept.
func (v *CampaignView) Load(ctx context.Context) error {
	ctx = logging.WithCampaign(ctx, v.campaignID)

	var (
		campaign *model.Campaign
		name     string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaign, err = v.repo.GetCampaign(gctx, v.campaignID)
		return err
	})
	g.Go(func() error {
		name = v.identity.ResolveDonorName(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.WarnContext(ctx, "campaign view load failed", "error", err)
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed.Load() {
		slog.DebugContext(ctx, "discarding campaign loaded after view closed")
		return nil
	}
	v.snapshot.Store(campaign)
	v.donorName.Store(&name)
	return nil
}

// Donate submits a donation through the controller. A blank donorName uses
// the name resolved by Load. A confirmed result replaces the snapshot; a
// stale one leaves it as it was.
func (v *CampaignView) Donate(ctx context.Context, donorName, amount string) (*Result, error) {
	if donorName == "" {
		donorName = v.DonorName()
	}

	result, err := v.controller.Submit(ctx, v.campaignID, donorName, amount)
	if err != nil || result == nil || !result.Confirmed {
		return result, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed.Load() {
		slog.DebugContext(ctx, "discarding donation result after view closed", "campaign_id", v.campaignID)
		return result, nil
	}
	v.snapshot.Store(result.Campaign)
	return result, nil
}

// Snapshot returns a copy of the cached campaign, or nil before a successful Load
func (v *CampaignView) Snapshot() *model.Campaign {
	return v.snapshot.Load().Clone()
}

// Progress renders the progress of the cached campaign
func (v *CampaignView) Progress() (progress.Display, bool, error) {
	c := v.snapshot.Load()
	if c == nil {
		return progress.Display{}, false, nil
	}
	d, err := c.Display()
	return d, true, err
}

// DonorName returns the default donor name resolved by Load
func (v *CampaignView) DonorName() string {
	if name := v.donorName.Load(); name != nil {
		return *name
	}
	return ""
}

// Submitting reports whether a donation for this campaign is in flight
func (v *CampaignView) Submitting() bool {
	return v.controller.InFlight(v.campaignID)
}

// Close tears the view down and discards the snapshot
func (v *CampaignView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed.Store(true)
	v.snapshot.Store(nil)
}

// Closed reports whether Close was called
func (v *CampaignView) Closed() bool {
	return v.closed.Load()
}
