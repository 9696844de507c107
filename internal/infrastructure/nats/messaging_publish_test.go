// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

type recordingConn struct {
	msgs []*nats.Msg
	err  error
}

func (r *recordingConn) PublishMsg(msg *nats.Msg) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

func readyAlways(context.Context) error { return nil }

func sampleEvent() model.DonationRecordedEvent {
	return model.DonationRecordedEvent{
		EventID:    "evt-1",
		CampaignID: "c1",
		DonorName:  "Jordan",
		Amount:     25.5,
		RecordedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDonationRecordedPublishesMsgpack(t *testing.T) {
	conn := &recordingConn{}
	publisher := &messagingPublisher{ready: readyAlways, conn: conn}

	require.NoError(t, publisher.DonationRecorded(context.Background(), sampleEvent()))
	require.Len(t, conn.msgs, 1)

	msg := conn.msgs[0]
	assert.Equal(t, constants.DonationRecordedSubject, msg.Subject)
	assert.Equal(t, constants.ContentTypeMsgpack, msg.Header.Get(constants.HeaderContentType))

	var decoded model.DonationRecordedEvent
	require.NoError(t, msgpack.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, "c1", decoded.CampaignID)
	assert.Equal(t, "Jordan", decoded.DonorName)
	assert.Equal(t, 25.5, decoded.Amount)
	assert.True(t, decoded.RecordedAt.Equal(sampleEvent().RecordedAt))
}

func TestDonationRecordedFailures(t *testing.T) {
	tests := []struct {
		name  string
		ready func(context.Context) error
		conn  *recordingConn
	}{
		{
			name:  "client not ready",
			ready: func(context.Context) error { return errs.NewServiceUnavailable("down") },
			conn:  &recordingConn{},
		},
		{
			name:  "publish fails",
			ready: readyAlways,
			conn:  &recordingConn{err: errors.New("nats: connection closed")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &messagingPublisher{ready: tt.ready, conn: tt.conn}

			err := publisher.DonationRecorded(context.Background(), sampleEvent())
			require.Error(t, err)
			assert.IsType(t, errs.ServiceUnavailable{}, err)
			assert.Empty(t, tt.conn.msgs)
		})
	}
}
