// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mock provides in-memory implementations of the domain ports for
// tests and offline runs.
package mock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// Operation names accepted by SetErrorForOperation
const (
	OperationListCampaigns = "ListCampaigns"
	OperationDonate        = "Donate"
)

// MockCampaignService is an in-memory stand-in for the remote campaign
// service. Donations are applied server side so a refresh observes them.
type MockCampaignService struct {
	mu        sync.RWMutex
	campaigns map[string]*model.Campaign
	order     []string

	listCalls   int
	donateCalls int

	// error simulation
	globalError     error
	operationErrors map[string]error
	campaignErrors  map[string]error

	// donateGate, when set, holds Donate until it is closed or ctx ends
	donateGate chan struct{}
	donating   chan struct{}
	now        func() time.Time
}

// Ensure MockCampaignService implements the campaign service ports
var _ port.CampaignService = (*MockCampaignService)(nil)

// NewMockCampaignService creates a service holding the given campaigns, or
// the sample catalog when none are given.
func NewMockCampaignService(campaigns ...*model.Campaign) *MockCampaignService {
	m := &MockCampaignService{
		campaigns:       make(map[string]*model.Campaign),
		operationErrors: make(map[string]error),
		campaignErrors:  make(map[string]error),
		donating:        make(chan struct{}, 64),
		now:             time.Now,
	}

	if len(campaigns) == 0 {
		campaigns = SampleCampaigns()
	}
	for _, c := range campaigns {
		m.PutCampaign(c)
	}
	return m
}

// SampleCampaigns returns the catalog used by the mock source
func SampleCampaigns() []*model.Campaign {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return []*model.Campaign{
		{
			ID:           "65f1a2b3c4d5e6f7a8b9c0d1",
			Title:        "Clean Water for Turkana",
			Description:  "Drill and maintain two community boreholes.",
			Country:      "Kenya",
			ZipCode:      "30500",
			Status:       model.CampaignStatusActive,
			Recipient:    "Turkana Water Trust",
			AmountRaised: 4200,
			Goal:         12000,
			TopDonor:     "Amina",
			CreatedBy:    "amina.k",
			CreatedOn:    created,
			Donations: []model.Donation{
				{DonorName: "Amina", Amount: 2500, CreatedAt: created.Add(24 * time.Hour)},
				{DonorName: "Anonymous", Amount: 1700, CreatedAt: created.Add(48 * time.Hour)},
			},
		},
		{
			ID:           "65f1a2b3c4d5e6f7a8b9c0d2",
			Title:        "School Library Roof",
			Description:  "Replace the leaking roof before the rains.",
			Country:      "India",
			ZipCode:      "400001",
			Status:       model.CampaignStatusActive,
			Recipient:    "St. Xavier Primary",
			AmountRaised: 800,
			Goal:         800,
			TopDonor:     "Ravi",
			CreatedBy:    "ravi.m",
			CreatedOn:    created.Add(72 * time.Hour),
			Donations: []model.Donation{
				{DonorName: "Ravi", Amount: 800, CreatedAt: created.Add(96 * time.Hour)},
			},
		},
		{
			ID:          "65f1a2b3c4d5e6f7a8b9c0d3",
			Title:       "Community Garden",
			Description: "Seeds, tools and a rainwater tank.",
			Country:     "Portugal",
			Status:      model.CampaignStatusClosed,
			Recipient:   "Horta Viva",
			Goal:        1500,
			CreatedBy:   "joana",
			CreatedOn:   created.Add(120 * time.Hour),
			Donations:   []model.Donation{},
		},
	}
}

// ListCampaigns returns copies of every campaign in insertion order
func (m *MockCampaignService) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()

	if err := m.simulatedError(OperationListCampaigns, ""); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	campaigns := make([]*model.Campaign, 0, len(m.order))
	for _, id := range m.order {
		campaigns = append(campaigns, m.campaigns[id].Clone())
	}

	slog.DebugContext(ctx, "mock campaigns listed", "count", len(campaigns))
	return campaigns, nil
}

// Donate applies the donation to the stored campaign
func (m *MockCampaignService) Donate(ctx context.Context, campaignID string, donation model.Donation) error {
	m.mu.Lock()
	m.donateCalls++
	gate := m.donateGate
	m.mu.Unlock()

	if gate != nil {
		select {
		case m.donating <- struct{}{}:
		default:
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := m.simulatedError(OperationDonate, campaignID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	campaign, ok := m.campaigns[campaignID]
	if !ok {
		return errors.NewNotFound(fmt.Sprintf("campaign %s not found", campaignID))
	}

	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = m.now()
	}
	campaign.AmountRaised += donation.Amount
	campaign.Donations = append(campaign.Donations, donation)
	if donation.Amount > topDonationAmount(campaign) {
		campaign.TopDonor = donation.DonorName
	}
	campaign.Normalize()

	slog.InfoContext(ctx, "mock donation recorded",
		"campaign_id", campaignID,
		"amount", donation.Amount,
		"amount_raised", campaign.AmountRaised,
	)
	return nil
}

// topDonationAmount is the largest donation other than the newest one
func topDonationAmount(c *model.Campaign) float64 {
	var top float64
	for _, d := range c.Donations[:len(c.Donations)-1] {
		if d.Amount > top {
			top = d.Amount
		}
	}
	return top
}

// PutCampaign stores a copy of the campaign, replacing any with the same ID
func (m *MockCampaignService) PutCampaign(c *model.Campaign) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := c.Clone()
	stored.Normalize()
	if _, exists := m.campaigns[stored.ID]; !exists {
		m.order = append(m.order, stored.ID)
	}
	m.campaigns[stored.ID] = stored
}

// RemoveCampaign deletes a campaign so later lookups miss it
func (m *MockCampaignService) RemoveCampaign(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.campaigns, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Campaign returns a copy of the stored campaign
func (m *MockCampaignService) Campaign(id string) (*model.Campaign, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.campaigns[id]
	return c.Clone(), ok
}

// ListCalls returns how many times ListCampaigns was called
func (m *MockCampaignService) ListCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls
}

// DonateCalls returns how many times Donate was called
func (m *MockCampaignService) DonateCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.donateCalls
}

// HoldDonations makes Donate block until the returned release func is called
func (m *MockCampaignService) HoldDonations() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.donateGate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.donateGate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

// Donating is signalled each time a held Donate call starts waiting
func (m *MockCampaignService) Donating() <-chan struct{} {
	return m.donating
}

// SetGlobalError makes every operation fail with err
func (m *MockCampaignService) SetGlobalError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalError = err
}

// SetErrorForOperation makes one operation fail with err
func (m *MockCampaignService) SetErrorForOperation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operationErrors[operation] = err
}

// SetErrorForCampaign makes donations to one campaign fail with err
func (m *MockCampaignService) SetErrorForCampaign(campaignID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaignErrors[campaignID] = err
}

// ClearErrorSimulation removes every configured error
func (m *MockCampaignService) ClearErrorSimulation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalError = nil
	m.operationErrors = make(map[string]error)
	m.campaignErrors = make(map[string]error)
}

// simulatedError resolves configured errors: global, then operation, then campaign
func (m *MockCampaignService) simulatedError(operation, campaignID string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.globalError != nil {
		return m.globalError
	}
	if err, ok := m.operationErrors[operation]; ok {
		return err
	}
	if campaignID != "" {
		if err, ok := m.campaignErrors[campaignID]; ok {
			return err
		}
	}
	return nil
}
