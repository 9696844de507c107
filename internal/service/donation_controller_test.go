// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/mock"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

func TestSubmitRejectsInvalidAmounts(t *testing.T) {
	for _, amount := range []string{"0", "-5", "", "abc", "   ", "NaN", "Inf", "-0", "1e400"} {
		t.Run(amount, func(t *testing.T) {
			svc := mock.NewMockCampaignService(testCampaign())
			controller := newTestController(svc, nil, nil)

			result, err := controller.Submit(context.Background(), "c1", "Jordan", amount)
			require.Error(t, err)
			assert.IsType(t, errs.Validation{}, err)

			var validation errs.Validation
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, "amount", validation.Field)

			require.NotNil(t, result)
			assert.Equal(t, StateFailed, result.State)
			assert.Equal(t, []SubmissionState{StateIdle, StateValidating, StateFailed}, result.Transitions)
			assert.Zero(t, svc.DonateCalls(), "no donation call")
			assert.Zero(t, svc.ListCalls(), "no refresh call")
		})
	}
}

func TestSubmitRejectsEmptyCampaignID(t *testing.T) {
	svc := mock.NewMockCampaignService(testCampaign())
	controller := newTestController(svc, nil, nil)

	_, err := controller.Submit(context.Background(), "  ", "Jordan", "25")
	require.Error(t, err)

	var validation errs.Validation
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "campaign_id", validation.Field)
	assert.Zero(t, svc.DonateCalls())
}

func TestSubmitSucceeds(t *testing.T) {
	ctx := context.Background()
	svc := mock.NewMockCampaignService(testCampaign())
	store := mock.NewMemorySessionStore()
	require.NoError(t, store.SetUserData(model.SessionRecord{Name: "Jordan"}))
	publisher := mock.NewMockDonationEventPublisher()
	controller := newTestController(svc, store, publisher)

	result, err := controller.Submit(ctx, "c1", "", " 25 ")
	require.NoError(t, err)

	want := []SubmissionState{StateIdle, StateValidating, StateSubmitting, StateSucceeded}
	if diff := cmp.Diff(want, result.Transitions); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, StateSucceeded, result.State)
	assert.True(t, result.Confirmed)
	assert.False(t, result.StaleDisplay)
	assert.Equal(t, model.Donation{DonorName: "Jordan", Amount: 25, CreatedAt: fixedClock()}, result.Donation)

	require.NotNil(t, result.Campaign)
	stored, ok := svc.Campaign("c1")
	require.True(t, ok)
	if diff := cmp.Diff(stored, result.Campaign); diff != "" {
		t.Errorf("result campaign is not the refreshed campaign (-stored +got):\n%s", diff)
	}
	assert.Equal(t, 125.0, result.Campaign.AmountRaised)
	assert.Equal(t, 1, svc.DonateCalls())

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "c1", events[0].CampaignID)
	assert.Equal(t, "Jordan", events[0].DonorName)
	assert.Equal(t, 25.0, events[0].Amount)
	assert.NotEmpty(t, events[0].EventID)

	assert.False(t, controller.InFlight("c1"))
}

func TestSubmitUsesRefreshedAmountNotLocalIncrement(t *testing.T) {
	svc := mock.NewMockCampaignService(testCampaign())
	writer := &ackOnlyWriter{}
	controller := NewDonationController(
		WithDonationWriter(writer),
		WithReconcileRepository(NewCampaignRepository(WithCampaignReader(svc))),
	)

	result, err := controller.Submit(context.Background(), "c1", "Jordan", "25")
	require.NoError(t, err)
	assert.Equal(t, int32(1), writer.calls.Load())
	assert.True(t, result.Confirmed)
	assert.Equal(t, 100.0, result.Campaign.AmountRaised, "amount comes from the service")
}

func TestSubmitExplicitDonorNameWins(t *testing.T) {
	svc := mock.NewMockCampaignService(testCampaign())
	store := mock.NewMemorySessionStore()
	require.NoError(t, store.SetUserData(model.SessionRecord{Name: "Session User"}))
	controller := newTestController(svc, store, nil)

	result, err := controller.Submit(context.Background(), "c1", "  Priya ", "10.50")
	require.NoError(t, err)
	assert.Equal(t, "Priya", result.Donation.DonorName)
	assert.Equal(t, 10.5, result.Donation.Amount)
}

func TestSubmitAnonymousWithoutSession(t *testing.T) {
	svc := mock.NewMockCampaignService(testCampaign())
	controller := newTestController(svc, nil, nil)

	result, err := controller.Submit(context.Background(), "c1", "", "5")
	require.NoError(t, err)
	assert.Equal(t, model.AnonymousDonor, result.Donation.DonorName)
}

func TestSubmitDonationFailure(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "service rejected", cause: errs.NewSubmission("donation rejected")},
		{name: "campaign gone", cause: errs.NewNotFound("campaign c1 not found")},
		{name: "untyped network error", cause: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mock.NewMockCampaignService(testCampaign())
			svc.SetErrorForOperation(mock.OperationDonate, tt.cause)
			publisher := mock.NewMockDonationEventPublisher()
			controller := newTestController(svc, nil, publisher)

			result, err := controller.Submit(context.Background(), "c1", "Jordan", "25")
			require.Error(t, err)
			assert.IsType(t, errs.Submission{}, err)
			assert.ErrorIs(t, err, tt.cause)

			assert.Equal(t, []SubmissionState{StateIdle, StateValidating, StateSubmitting, StateFailed}, result.Transitions)
			assert.Nil(t, result.Campaign)
			assert.False(t, result.Confirmed)
			assert.Zero(t, svc.ListCalls(), "no refresh after a failed donation")
			assert.Empty(t, publisher.Events())

			stored, _ := svc.Campaign("c1")
			assert.Equal(t, 100.0, stored.AmountRaised)
			assert.False(t, controller.InFlight("c1"))
		})
	}
}

func TestSubmitRefreshFailureIsStale(t *testing.T) {
	svc := &refreshFailingService{MockCampaignService: mock.NewMockCampaignService(testCampaign())}
	publisher := mock.NewMockDonationEventPublisher()
	controller := NewDonationController(
		WithDonationWriter(svc),
		WithReconcileRepository(NewCampaignRepository(WithCampaignReader(svc))),
		WithDonationEventPublisher(publisher),
	)

	result, err := controller.Submit(context.Background(), "c1", "Jordan", "25")
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	assert.True(t, result.StaleDisplay)
	assert.False(t, result.Confirmed)
	assert.Nil(t, result.Campaign)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.True(t, events[0].StaleDisplay)
}

func TestSubmitPublishFailureDoesNotFailDonation(t *testing.T) {
	svc := mock.NewMockCampaignService(testCampaign())
	publisher := mock.NewMockDonationEventPublisher()
	publisher.SetError(errs.NewServiceUnavailable("nats down"))
	controller := newTestController(svc, nil, publisher)

	result, err := controller.Submit(context.Background(), "c1", "Jordan", "25")
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
}

func TestSubmitBusyWhileInFlight(t *testing.T) {
	ctx := context.Background()
	svc := mock.NewMockCampaignService(testCampaign(), &model.Campaign{ID: "c2", Goal: 10})
	controller := newTestController(svc, nil, nil)

	release := svc.HoldDonations()
	defer release()

	var wg sync.WaitGroup
	var first *Result
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = controller.Submit(ctx, "c1", "Jordan", "25")
	}()

	select {
	case <-svc.Donating():
	case <-time.After(time.Second):
		t.Fatal("first donation never reached the service")
	}
	assert.True(t, controller.InFlight("c1"))

	second, err := controller.Submit(ctx, "c1", "Jordan", "25")
	require.Error(t, err)
	assert.IsType(t, errs.Busy{}, err)
	assert.Contains(t, err.Error(), "please wait")
	assert.Nil(t, second)
	assert.Equal(t, 1, svc.DonateCalls(), "no second donation call")

	// Invalid input is still reported as invalid
	_, err = controller.Submit(ctx, "c1", "Jordan", "0")
	assert.IsType(t, errs.Validation{}, err)

	release()
	wg.Wait()
	require.NoError(t, firstErr)
	assert.True(t, first.Confirmed)
	assert.False(t, controller.InFlight("c1"))

	again, err := controller.Submit(ctx, "c1", "Jordan", "5")
	require.NoError(t, err)
	assert.Equal(t, 130.0, again.Campaign.AmountRaised)
}

func TestSubmitOtherCampaignNotBusy(t *testing.T) {
	ctx := context.Background()
	svc := mock.NewMockCampaignService(testCampaign(), &model.Campaign{ID: "c2", Goal: 10})
	writer := &ackOnlyWriter{}
	held := mock.NewMockCampaignService(testCampaign())
	release := held.HoldDonations()

	gate := &routingWriter{held: held, other: writer}
	controller := NewDonationController(
		WithDonationWriter(gate),
		WithReconcileRepository(NewCampaignRepository(WithCampaignReader(svc))),
	)

	done := make(chan error, 1)
	go func() {
		_, err := controller.Submit(ctx, "c1", "Jordan", "1")
		done <- err
	}()
	<-held.Donating()

	result, err := controller.Submit(ctx, "c2", "Jordan", "1")
	require.NoError(t, err)
	assert.True(t, result.Confirmed)

	release()
	require.NoError(t, <-done)
}

// routingWriter sends c1 donations to held and everything else to other
type routingWriter struct {
	held  *mock.MockCampaignService
	other *ackOnlyWriter
}

func (w *routingWriter) Donate(ctx context.Context, campaignID string, donation model.Donation) error {
	if campaignID == "c1" {
		return w.held.Donate(ctx, campaignID, donation)
	}
	return w.other.Donate(ctx, campaignID, donation)
}

func TestSubmitWithoutWriter(t *testing.T) {
	controller := NewDonationController()

	result, err := controller.Submit(context.Background(), "c1", "Jordan", "1")
	require.Error(t, err)
	assert.IsType(t, errs.Submission{}, err)
	assert.Equal(t, StateFailed, result.State)
}
