// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package model contains the domain entities of the donation client.
package model

import (
	"math"
	"time"

	"github.com/farhanmansurii/Donate-frontend/pkg/progress"
)

// CampaignStatus is the lifecycle state reported by the campaign service
type CampaignStatus string

const (
	// CampaignStatusActive accepts donations
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusClosed no longer accepts donations
	CampaignStatusClosed CampaignStatus = "closed"
)

// Campaign is a fundraising goal owned by the remote campaign service.
// Values held by the client are read-only snapshots; a refresh replaces the
// whole value instead of patching fields.
type Campaign struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Country         string         `json:"country"`
	ZipCode         string         `json:"zipCode"`
	Status          CampaignStatus `json:"status"`
	Recipient       string         `json:"recipient"`
	AmountRaised    float64        `json:"amountRaised"`
	Goal            float64        `json:"goal"`
	RemainingAmount float64        `json:"remainingAmount"`
	TopDonor        string         `json:"topDonor,omitempty"`
	CreatedBy       string         `json:"createdUsername,omitempty"`
	CreatedOn       time.Time      `json:"createdOn"`
	Donations       []Donation     `json:"donations"`
}

// Normalize fills the derived amounts. A missing goal is derived from
// amountRaised + remainingAmount, and remainingAmount is always
// max(goal - amountRaised, 0).
func (c *Campaign) Normalize() {
	if c.AmountRaised < 0 || math.IsNaN(c.AmountRaised) {
		c.AmountRaised = 0
	}
	if c.Goal <= 0 && c.RemainingAmount > 0 {
		c.Goal = c.AmountRaised + c.RemainingAmount
	}
	c.RemainingAmount = math.Max(c.Goal-c.AmountRaised, 0)
}

// IsActive reports whether the campaign still takes donations. Campaigns with
// no status are treated as active.
func (c *Campaign) IsActive() bool {
	return c.Status == "" || c.Status == CampaignStatusActive
}

// Progress returns the bounded progress percentage of the campaign
func (c *Campaign) Progress() (float64, error) {
	return progress.ComputeProgressPercentage(c.AmountRaised, c.Goal)
}

// Display returns the rendered progress values of the campaign
func (c *Campaign) Display() (progress.Display, error) {
	return progress.Summary(c.AmountRaised, c.Goal, c.RemainingAmount)
}

// Clone returns a deep copy so a snapshot can be handed out without sharing
// the donations slice.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Donations != nil {
		clone.Donations = make([]Donation, len(c.Donations))
		copy(clone.Donations, c.Donations)
	}
	return &clone
}
