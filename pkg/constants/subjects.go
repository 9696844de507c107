// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// NATS messaging subjects
const (
	// DonationRecordedSubject receives an event for every donation the campaign service accepted
	DonationRecordedSubject = "donate.campaign.donation.recorded"
)

// NATS message headers
const (
	// HeaderContentType describes the payload encoding of published events
	HeaderContentType = "Content-Type"
	// ContentTypeMsgpack is the payload encoding of donation events
	ContentTypeMsgpack = "application/msgpack"
)
