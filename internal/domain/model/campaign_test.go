// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

func TestCampaignNormalize(t *testing.T) {
	tests := []struct {
		name              string
		campaign          Campaign
		expectedGoal      float64
		expectedRemaining float64
		expectedRaised    float64
	}{
		{
			name:              "goal supplied",
			campaign:          Campaign{AmountRaised: 250, Goal: 1000},
			expectedGoal:      1000,
			expectedRemaining: 750,
			expectedRaised:    250,
		},
		{
			name:              "goal derived from remaining",
			campaign:          Campaign{AmountRaised: 250, RemainingAmount: 750},
			expectedGoal:      1000,
			expectedRemaining: 750,
			expectedRaised:    250,
		},
		{
			name:              "remaining recomputed when inconsistent",
			campaign:          Campaign{AmountRaised: 400, Goal: 1000, RemainingAmount: 999},
			expectedGoal:      1000,
			expectedRemaining: 600,
			expectedRaised:    400,
		},
		{
			name:              "over funded leaves zero remaining",
			campaign:          Campaign{AmountRaised: 1500, Goal: 1000},
			expectedGoal:      1000,
			expectedRemaining: 0,
			expectedRaised:    1500,
		},
		{
			name:              "negative raised reset",
			campaign:          Campaign{AmountRaised: -10, Goal: 100},
			expectedGoal:      100,
			expectedRemaining: 100,
			expectedRaised:    0,
		},
		{
			name:              "no goal and nothing remaining stays invalid",
			campaign:          Campaign{AmountRaised: 10},
			expectedGoal:      0,
			expectedRemaining: 0,
			expectedRaised:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.campaign
			c.Normalize()
			assert.Equal(t, tt.expectedGoal, c.Goal)
			assert.Equal(t, tt.expectedRemaining, c.RemainingAmount)
			assert.Equal(t, tt.expectedRaised, c.AmountRaised)
		})
	}
}

func TestCampaignProgress(t *testing.T) {
	c := &Campaign{AmountRaised: 250, Goal: 1000}
	p, err := c.Progress()
	require.NoError(t, err)
	assert.Equal(t, 25.0, p)

	broken := &Campaign{AmountRaised: 250}
	_, err = broken.Progress()
	assert.IsType(t, errs.InvalidGoal{}, err)
}

func TestCampaignDisplay(t *testing.T) {
	c := &Campaign{AmountRaised: 1250, Goal: 5000}
	c.Normalize()

	display, err := c.Display()
	require.NoError(t, err)
	assert.Equal(t, 25.0, display.Percentage)
	assert.Equal(t, "$1,250", display.Raised)
	assert.Equal(t, "$5,000", display.Goal)
	assert.Equal(t, "$3,750", display.Remaining)
}

func TestCampaignIsActive(t *testing.T) {
	assert.True(t, (&Campaign{}).IsActive())
	assert.True(t, (&Campaign{Status: CampaignStatusActive}).IsActive())
	assert.False(t, (&Campaign{Status: CampaignStatusClosed}).IsActive())
}

func TestCampaignClone(t *testing.T) {
	original := &Campaign{
		ID:        "c1",
		CreatedOn: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Donations: []Donation{{DonorName: "Jordan", Amount: 25}},
	}

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	clone.Donations[0].Amount = 1000
	clone.Title = "changed"
	assert.Equal(t, 25.0, original.Donations[0].Amount)
	assert.Empty(t, original.Title)

	var nilCampaign *Campaign
	assert.Nil(t, nilCampaign.Clone())
}
