// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package campaignapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/pkg/utils"
)

// CampaignObject is a campaign as the service serialises it
type CampaignObject struct {
	MongoID         string           `json:"_id"`
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Country         string           `json:"country"`
	ZipCode         string           `json:"zipCode"`
	Status          string           `json:"status"`
	Recipient       string           `json:"recipient"`
	AmountRaised    float64          `json:"amountRaised"`
	Goal            float64          `json:"goal"`
	RemainingAmount float64          `json:"remainingAmount"`
	TopDonor        json.RawMessage  `json:"topDonor,omitempty"`
	CreatedUsername string           `json:"createdUsername,omitempty"`
	CreatedOn       string           `json:"createdOn"`
	Donations       []DonationObject `json:"donations"`
}

// DonationObject is a recorded donation as the service serialises it
type DonationObject struct {
	DonorName string  `json:"donorName"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date,omitempty"`
}

// DonateRequest is the body of the donate call
type DonateRequest struct {
	DonorName string  `json:"donorName"`
	Amount    float64 `json:"amount"`
}

// topDonorObject covers services that send the top donor as an object
type topDonorObject struct {
	Name      string `json:"name"`
	DonorName string `json:"donorName"`
}

// identifier prefers the document ID the service stores campaigns under
func (o CampaignObject) identifier() string {
	if o.MongoID != "" {
		return o.MongoID
	}
	return o.ID
}

// topDonorName accepts either a plain string or an object with a name
func (o CampaignObject) topDonorName() string {
	if len(o.TopDonor) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(o.TopDonor, &name); err == nil {
		return strings.TrimSpace(name)
	}

	var obj topDonorObject
	if err := json.Unmarshal(o.TopDonor, &obj); err == nil {
		if obj.Name != "" {
			return strings.TrimSpace(obj.Name)
		}
		return strings.TrimSpace(obj.DonorName)
	}

	return ""
}

// parseTimestamp tolerates unknown formats; the timestamp is display only
func parseTimestamp(value string) time.Time {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// toModel converts the wire object into a normalised domain campaign
func (o CampaignObject) toModel() *model.Campaign {
	campaign := &model.Campaign{
		ID:              o.identifier(),
		Title:           o.Title,
		Description:     o.Description,
		Country:         o.Country,
		ZipCode:         o.ZipCode,
		Status:          model.CampaignStatus(strings.ToLower(strings.TrimSpace(o.Status))),
		Recipient:       o.Recipient,
		AmountRaised:    o.AmountRaised,
		Goal:            o.Goal,
		RemainingAmount: o.RemainingAmount,
		TopDonor:        o.topDonorName(),
		CreatedBy:       o.CreatedUsername,
		CreatedOn:       parseTimestamp(o.CreatedOn),
		Donations:       make([]model.Donation, 0, len(o.Donations)),
	}

	for _, d := range o.Donations {
		name := strings.TrimSpace(d.DonorName)
		if name == "" {
			name = model.AnonymousDonor
		}
		campaign.Donations = append(campaign.Donations, model.Donation{
			DonorName: name,
			Amount:    d.Amount,
			CreatedAt: parseTimestamp(d.Date),
		})
	}

	campaign.Normalize()
	return campaign
}
