// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
)

// DonationEventPublisher announces accepted donations to downstream consumers
type DonationEventPublisher interface {
	DonationRecorded(ctx context.Context, event model.DonationRecordedEvent) error
}
