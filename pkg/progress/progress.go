// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package progress derives display values for a campaign's fundraising progress.
package progress

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// ComputeProgressPercentage returns raised/goal*100 clamped to [0, 100].
// A goal that is not a positive finite number yields errors.InvalidGoal.
func ComputeProgressPercentage(raised, goal float64) (float64, error) {
	if goal <= 0 || math.IsNaN(goal) || math.IsInf(goal, 0) {
		return 0, errors.NewInvalidGoal(goal)
	}

	if math.IsNaN(raised) || raised <= 0 {
		return 0, nil
	}
	if raised >= goal {
		return 100, nil
	}

	percentage := raised / goal * 100
	return math.Min(percentage, 100), nil
}

// Display bundles the rendered progress values of one campaign.
type Display struct {
	Percentage float64
	Raised     string
	Goal       string
	Remaining  string
}

// Summary renders the progress line of a campaign.
func Summary(raised, goal, remaining float64) (Display, error) {
	percentage, err := ComputeProgressPercentage(raised, goal)
	if err != nil {
		return Display{}, err
	}

	return Display{
		Percentage: percentage,
		Raised:     FormatAmount(raised),
		Goal:       FormatAmount(goal),
		Remaining:  FormatAmount(remaining),
	}, nil
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount with grouping separators, e.g. $1,234.50.
// Whole amounts drop the fraction.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) && !math.IsInf(amount, 0) {
		return printer.Sprintf("$%.0f", amount)
	}
	return printer.Sprintf("$%.2f", amount)
}
