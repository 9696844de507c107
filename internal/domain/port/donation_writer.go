// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
)

// DonationWriter records donations against a campaign
type DonationWriter interface {
	// Donate records the donation. A nil error is an acknowledgment only; the
	// updated campaign must be fetched again.
	Donate(ctx context.Context, campaignID string, donation model.Donation) error
}

// CampaignService combines both sides of the remote campaign service
type CampaignService interface {
	CampaignReader
	DonationWriter
}
