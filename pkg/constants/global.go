// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines global constants used throughout the donation client.
package constants

// Service constants
const (
	// ServiceName is the name of this client, used for NATS connection names and tracing
	ServiceName = "donate-client"
)

// Environment variables
const (
	// EnvCampaignSource selects the campaign service implementation
	EnvCampaignSource = "CAMPAIGN_SOURCE"
	// EnvSessionSource selects the session store implementation
	EnvSessionSource = "SESSION_SOURCE"
	// EnvDonorName seeds the in-memory session with a signed-in user name
	EnvDonorName = "DONOR_NAME"
)
