// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Remote campaign service paths
const (
	// CampaignsPath lists every campaign
	CampaignsPath = "/api/campaigns"
	// DonatePathFormat records a donation against the campaign ID
	DonatePathFormat = "/api/campaigns/%s/donate"
)

// HTTP header constants
const (
	// IdempotencyKeyHeader lets the service recognise a replayed donation
	IdempotencyKeyHeader = "Idempotency-Key"
	// ContentTypeJSON is the content type of request bodies
	ContentTypeJSON = "application/json"
)
