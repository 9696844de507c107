// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package port defines the interfaces for external dependencies and adapters.
package port

import (
	"context"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
)

// CampaignReader defines the read side of the remote campaign service
type CampaignReader interface {
	// ListCampaigns retrieves every campaign in the order the service returns them.
	// The service has no single-campaign lookup.
	ListCampaigns(ctx context.Context) ([]*model.Campaign, error)
}
