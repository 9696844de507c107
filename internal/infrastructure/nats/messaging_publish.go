// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// msgPublisher is the part of a NATS connection used for publishing
type msgPublisher interface {
	PublishMsg(msg *nats.Msg) error
}

// messagingPublisher implements the DonationEventPublisher interface using NATS
type messagingPublisher struct {
	ready func(ctx context.Context) error
	conn  msgPublisher
}

// DonationRecorded publishes a donation event for downstream consumers
func (m *messagingPublisher) DonationRecorded(ctx context.Context, event model.DonationRecordedEvent) error {
	subject := constants.DonationRecordedSubject

	if err := m.ready(ctx); err != nil {
		slog.ErrorContext(ctx, "NATS client is not ready for publishing",
			"error", err,
			"subject", subject,
		)
		return errors.NewServiceUnavailable("NATS client is not ready", err)
	}

	msg, err := donationRecordedMsg(event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode donation event",
			"error", err,
			"subject", subject,
			"campaign_id", event.CampaignID,
		)
		return errors.NewUnexpected("failed to encode donation event", err)
	}

	if err := m.conn.PublishMsg(msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish message to NATS",
			"error", err,
			"subject", subject,
		)
		return errors.NewServiceUnavailable("failed to publish message", err)
	}

	slog.DebugContext(ctx, "donation event published",
		"subject", subject,
		"event_id", event.EventID,
		"message_size", len(msg.Data),
	)

	return nil
}

// donationRecordedMsg encodes the event as a msgpack NATS message
func donationRecordedMsg(event model.DonationRecordedEvent) (*nats.Msg, error) {
	data, err := msgpack.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := nats.NewMsg(constants.DonationRecordedSubject)
	msg.Header.Set(constants.HeaderContentType, constants.ContentTypeMsgpack)
	msg.Data = data
	return msg, nil
}

// NewDonationEventPublisher creates a DonationEventPublisher using NATS
func NewDonationEventPublisher(client *NATSClient) port.DonationEventPublisher {
	return &messagingPublisher{
		ready: client.IsReady,
		conn:  client.conn,
	}
}
