// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/mock"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// refreshFailingService accepts donations and fails every list call made
// after the first accepted donation.
type refreshFailingService struct {
	*mock.MockCampaignService
	donated atomic.Bool
}

func (s *refreshFailingService) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	if s.donated.Load() {
		return nil, errs.NewTransport("campaign service unreachable")
	}
	return s.MockCampaignService.ListCampaigns(ctx)
}

func (s *refreshFailingService) Donate(ctx context.Context, campaignID string, donation model.Donation) error {
	if err := s.MockCampaignService.Donate(ctx, campaignID, donation); err != nil {
		return err
	}
	s.donated.Store(true)
	return nil
}

// ackOnlyWriter acknowledges donations without changing any campaign
type ackOnlyWriter struct {
	calls atomic.Int32
}

func (w *ackOnlyWriter) Donate(context.Context, string, model.Donation) error {
	w.calls.Add(1)
	return nil
}

func testCampaign() *model.Campaign {
	return &model.Campaign{
		ID:           "c1",
		Title:        "Clean Water",
		Status:       model.CampaignStatusActive,
		AmountRaised: 100,
		Goal:         1000,
		Donations:    []model.Donation{{DonorName: "Sam", Amount: 100}},
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func newTestController(svc *mock.MockCampaignService, store *mock.MemorySessionStore, publisher *mock.MockDonationEventPublisher) DonationController {
	if store == nil {
		store = mock.NewMemorySessionStore()
	}
	opts := []DonationControllerOption{
		WithDonationWriter(svc),
		WithReconcileRepository(NewCampaignRepository(WithCampaignReader(svc))),
		WithDonorIdentity(NewDonorIdentityResolver(store)),
		WithClock(fixedClock),
	}
	if publisher != nil {
		opts = append(opts, WithDonationEventPublisher(publisher))
	}
	return NewDonationController(opts...)
}
