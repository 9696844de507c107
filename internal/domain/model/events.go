// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "time"

// DonationRecordedEvent is published after the campaign service accepted a donation
type DonationRecordedEvent struct {
	EventID      string    `msgpack:"event_id" json:"event_id"`
	CampaignID   string    `msgpack:"campaign_id" json:"campaign_id"`
	DonorName    string    `msgpack:"donor_name" json:"donor_name"`
	Amount       float64   `msgpack:"amount" json:"amount"`
	StaleDisplay bool      `msgpack:"stale_display" json:"stale_display"`
	RecordedAt   time.Time `msgpack:"recorded_at" json:"recorded_at"`
}
