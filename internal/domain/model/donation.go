// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// AnonymousDonor is the donor name used when nothing better is known
const AnonymousDonor = "Anonymous"

// Donation is an append-only contribution recorded against one campaign
type Donation struct {
	DonorName string    `json:"donorName"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"date,omitempty"`
}

// Validate checks the donation can be submitted
func (d Donation) Validate() error {
	if strings.TrimSpace(d.DonorName) == "" {
		return errors.NewFieldValidation("donor_name", "must not be empty")
	}
	if d.Amount <= 0 || math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) {
		return errors.NewFieldValidation("amount", "must be a positive number")
	}
	return nil
}

// ParseDonationAmount parses user input into a strictly positive finite amount
func ParseDonationAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.NewFieldValidation("amount", "is required")
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.NewFieldValidation("amount", "must be a number", err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.NewFieldValidation("amount", "must be a finite number")
	}
	if amount <= 0 {
		return 0, errors.NewFieldValidation("amount", "must be greater than zero")
	}

	return amount, nil
}
