// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/campaignapi"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/mock"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/nats"
	"github.com/farhanmansurii/Donate-frontend/internal/service"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
)

// providers holds the adapters selected by the configuration
type providers struct {
	campaigns port.CampaignService
	sessions  port.SessionStore
	publisher port.DonationEventPublisher

	natsClient *nats.NATSClient
}

// newProviders builds the adapters for the configured sources
func newProviders(ctx context.Context, cfg appConfig) (*providers, error) {
	p := &providers{}

	switch cfg.CampaignSource {
	case constants.SourceMock:
		slog.InfoContext(ctx, "initializing mock campaign service")
		p.campaigns = mock.NewMockCampaignService()
	case constants.SourceHTTP:
		slog.InfoContext(ctx, "initializing campaign service client", "base_url", cfg.CampaignAPI.BaseURL)
		client, err := campaignapi.NewClient(cfg.CampaignAPI)
		if err != nil {
			return nil, err
		}
		p.campaigns = client
	}

	if cfg.SessionSource == constants.SourceNATS || cfg.PublishEvents {
		client, err := nats.NewClient(ctx, cfg.NATS)
		if err != nil {
			return nil, err
		}
		p.natsClient = client
	}

	switch cfg.SessionSource {
	case constants.SourceNATS:
		slog.InfoContext(ctx, "initializing NATS session store", "bucket", cfg.NATS.SessionBucket)
		store, err := nats.NewSessionStore(p.natsClient, cfg.SessionID)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.sessions = store
	case constants.SourceMock:
		store := mock.NewMemorySessionStore()
		if err := store.SetUserData(model.SessionRecord{Name: "Mock Donor"}); err != nil {
			p.Close()
			return nil, err
		}
		p.sessions = store
	default:
		p.sessions = memorySessionFromEnv(ctx)
	}

	if cfg.PublishEvents {
		slog.InfoContext(ctx, "publishing donation events", "subject", constants.DonationRecordedSubject)
		p.publisher = nats.NewDonationEventPublisher(p.natsClient)
	}

	return p, nil
}

// memorySessionFromEnv seeds an in-memory session with the donor name from the environment
func memorySessionFromEnv(ctx context.Context) port.SessionStore {
	store := mock.NewMemorySessionStore()
	if name := os.Getenv(constants.EnvDonorName); name != "" {
		if err := store.SetUserData(model.SessionRecord{Name: name}); err != nil {
			slog.WarnContext(ctx, "ignoring donor name from environment", "error", err)
		}
	}
	return store
}

func (p *providers) repository() service.CampaignRepository {
	return service.NewCampaignRepository(service.WithCampaignReader(p.campaigns))
}

func (p *providers) identity() service.DonorIdentityResolver {
	return service.NewDonorIdentityResolver(p.sessions)
}

func (p *providers) controller() service.DonationController {
	controllerOpts := []service.DonationControllerOption{
		service.WithDonationWriter(p.campaigns),
		service.WithReconcileRepository(p.repository()),
		service.WithDonorIdentity(p.identity()),
	}
	if p.publisher != nil {
		controllerOpts = append(controllerOpts, service.WithDonationEventPublisher(p.publisher))
	}
	return service.NewDonationController(controllerOpts...)
}

// Close releases the NATS connection, if any
func (p *providers) Close() {
	if p.natsClient != nil {
		_ = p.natsClient.Close()
	}
}
