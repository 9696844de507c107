// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/pkg/progress"
)

// CatalogCard is one campaign of the catalog with its rendered progress
type CatalogCard struct {
	Campaign *model.Campaign
	Progress progress.Display
	// ProgressErr is set when the campaign has no usable goal
	ProgressErr error
}

// CatalogView owns the campaign list snapshot of the catalog page
type CatalogView struct {
	repo CampaignRepository

	mu     sync.Mutex
	closed bool
	cards  atomic.Pointer[[]CatalogCard]
}

// NewCatalogView creates the catalog view
func NewCatalogView(repo CampaignRepository) *CatalogView {
	return &CatalogView{repo: repo}
}

// Load lists the campaigns. On failure the catalog is emptied and the error
// returned so the caller can show a placeholder.
func (v *CatalogView) Load(ctx context.Context) ([]CatalogCard, error) {
	campaigns, err := v.repo.ListCampaigns(ctx)
	if err != nil {
		slog.WarnContext(ctx, "catalog load failed", "error", err)
		v.store(ctx, []CatalogCard{})
		return []CatalogCard{}, err
	}

	cards := make([]CatalogCard, 0, len(campaigns))
	for _, c := range campaigns {
		card := CatalogCard{Campaign: c}
		card.Progress, card.ProgressErr = c.Display()
		if card.ProgressErr != nil {
			slog.DebugContext(ctx, "campaign has no usable goal",
				"campaign_id", c.ID,
				"error", card.ProgressErr,
			)
		}
		cards = append(cards, card)
	}

	v.store(ctx, cards)
	return cards, nil
}

func (v *CatalogView) store(ctx context.Context, cards []CatalogCard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		slog.DebugContext(ctx, "discarding catalog loaded after view closed")
		return
	}
	v.cards.Store(&cards)
}

// Cards returns the last loaded catalog
func (v *CatalogView) Cards() []CatalogCard {
	cards := v.cards.Load()
	if cards == nil {
		return nil
	}
	return *cards
}

// Close tears the view down and discards the catalog
func (v *CatalogView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.cards.Store(nil)
}
