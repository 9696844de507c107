// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
)

// MockDonationEventPublisher records published events
type MockDonationEventPublisher struct {
	mu     sync.Mutex
	events []model.DonationRecordedEvent
	err    error
}

// Ensure MockDonationEventPublisher implements the DonationEventPublisher interface
var _ port.DonationEventPublisher = (*MockDonationEventPublisher)(nil)

// NewMockDonationEventPublisher creates a new recording publisher
func NewMockDonationEventPublisher() *MockDonationEventPublisher {
	return &MockDonationEventPublisher{}
}

// DonationRecorded records the event, or fails when an error is configured
func (p *MockDonationEventPublisher) DonationRecorded(ctx context.Context, event model.DonationRecordedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	slog.InfoContext(ctx, "mock donation event published",
		"campaign_id", event.CampaignID,
		"event_id", event.EventID,
	)
	return nil
}

// Events returns a copy of the recorded events
func (p *MockDonationEventPublisher) Events() []model.DonationRecordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.DonationRecordedEvent(nil), p.events...)
}

// SetError makes publishing fail with err
func (p *MockDonationEventPublisher) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}
