// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
	logging "github.com/farhanmansurii/Donate-frontend/pkg/log"
)

const tracerName = "github.com/farhanmansurii/Donate-frontend/internal/service"

// SubmissionState is the lifecycle state of one donation attempt
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// Result is the outcome of one donation attempt
type Result struct {
	CampaignID string
	// Donation is what was sent to the service
	Donation    model.Donation
	State       SubmissionState
	Transitions []SubmissionState
	// Campaign is the refreshed campaign; nil unless Confirmed
	Campaign *model.Campaign
	// Confirmed is set when the service accepted the donation and the
	// refreshed campaign is available
	Confirmed bool
	// StaleDisplay is set when the donation was accepted but the refresh
	// failed, so any progress on screen predates the donation
	StaleDisplay bool
}

func (r *Result) transition(state SubmissionState) {
	r.State = state
	r.Transitions = append(r.Transitions, state)
}

// DonationController validates, submits and reconciles donations
type DonationController interface {
	// Submit runs one donation attempt. A blank donorName is resolved from the
	// session. The returned Result is nil only when the attempt was rejected
	// with errors.Busy.
	Submit(ctx context.Context, campaignID, donorName, amount string) (*Result, error)
	// InFlight reports whether a submission for the campaign is in progress
	InFlight(campaignID string) bool
}

// DonationControllerOption configures a donation controller
type DonationControllerOption func(*donationController)

// WithDonationWriter sets the writer donations are sent to
func WithDonationWriter(writer port.DonationWriter) DonationControllerOption {
	return func(c *donationController) {
		c.writer = writer
	}
}

// WithReconcileRepository sets the repository used to refresh the campaign after a donation
func WithReconcileRepository(repo CampaignRepository) DonationControllerOption {
	return func(c *donationController) {
		c.repo = repo
	}
}

// WithDonorIdentity sets the resolver for blank donor names
func WithDonorIdentity(identity DonorIdentityResolver) DonationControllerOption {
	return func(c *donationController) {
		c.identity = identity
	}
}

// WithDonationEventPublisher sets the publisher notified of accepted donations
func WithDonationEventPublisher(publisher port.DonationEventPublisher) DonationControllerOption {
	return func(c *donationController) {
		c.publisher = publisher
	}
}

// WithClock overrides the time source used for donation timestamps
func WithClock(now func() time.Time) DonationControllerOption {
	return func(c *donationController) {
		c.now = now
	}
}

type donationController struct {
	writer    port.DonationWriter
	repo      CampaignRepository
	identity  DonorIdentityResolver
	publisher port.DonationEventPublisher
	now       func() time.Time
	tracer    trace.Tracer

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDonationController creates a new donation controller using the option pattern
func NewDonationController(opts ...DonationControllerOption) DonationController {
	c := &donationController{
		identity: NewDonorIdentityResolver(nil),
		now:      time.Now,
		tracer:   otel.Tracer(tracerName),
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// acquire claims the in-flight slot of a campaign
func (c *donationController) acquire(campaignID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[campaignID]; busy {
		return false
	}
	c.inFlight[campaignID] = struct{}{}
	return true
}

func (c *donationController) release(campaignID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, campaignID)
}

// InFlight reports whether a submission for the campaign is in progress
func (c *donationController) InFlight(campaignID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, busy := c.inFlight[strings.TrimSpace(campaignID)]
	return busy
}

// Submit runs Validate, Submit and Reconcile in order
func (c *donationController) Submit(ctx context.Context, campaignID, donorName, amount string) (*Result, error) {
	campaignID = strings.TrimSpace(campaignID)
	ctx = logging.WithCampaign(ctx, campaignID)

	ctx, span := c.tracer.Start(ctx, "donation.submit",
		trace.WithAttributes(attribute.String("campaign.id", campaignID)))
	defer span.End()

	result := &Result{CampaignID: campaignID}
	result.transition(StateIdle)
	result.transition(StateValidating)

	if campaignID == "" {
		return c.fail(ctx, span, result, errs.NewFieldValidation("campaign_id", "is required"))
	}

	value, err := model.ParseDonationAmount(amount)
	if err != nil {
		return c.fail(ctx, span, result, err)
	}

	if !c.acquire(campaignID) {
		slog.WarnContext(ctx, "donation already in flight for campaign")
		span.SetStatus(codes.Error, "busy")
		return nil, errs.NewBusy(campaignID)
	}
	defer c.release(campaignID)

	donorName = strings.TrimSpace(donorName)
	if donorName == "" {
		donorName = c.identity.ResolveDonorName(ctx)
	}

	result.Donation = model.Donation{
		DonorName: donorName,
		Amount:    value,
		CreatedAt: c.now().UTC(),
	}
	if err := result.Donation.Validate(); err != nil {
		return c.fail(ctx, span, result, err)
	}
	span.SetAttributes(attribute.Float64("donation.amount", value))

	result.transition(StateSubmitting)
	if c.writer == nil {
		return c.fail(ctx, span, result, errs.NewSubmission("campaign service is not configured"))
	}

	slog.InfoContext(ctx, "submitting donation",
		"amount", value,
		"donor_anonymous", donorName == model.AnonymousDonor,
	)
	if err := c.writer.Donate(ctx, campaignID, result.Donation); err != nil {
		return c.fail(ctx, span, result, submissionError(err))
	}

	c.reconcile(ctx, span, result)
	result.transition(StateSucceeded)

	c.publish(ctx, result)

	slog.InfoContext(ctx, "donation succeeded",
		"confirmed", result.Confirmed,
		"stale_display", result.StaleDisplay,
	)
	span.SetStatus(codes.Ok, "")
	return result, nil
}

// reconcile refreshes the campaign after an accepted donation. A failed
// refresh does not fail the donation.
func (c *donationController) reconcile(ctx context.Context, span trace.Span, result *Result) {
	if c.repo == nil {
		result.StaleDisplay = true
		return
	}

	refreshed, err := c.repo.GetCampaign(ctx, result.CampaignID)
	if err != nil {
		slog.WarnContext(ctx, "donation accepted but campaign refresh failed",
			"error", err,
		)
		span.AddEvent("reconcile failed", trace.WithAttributes(attribute.String("error", err.Error())))
		result.StaleDisplay = true
		return
	}

	result.Campaign = refreshed
	result.Confirmed = true
}

// publish announces the accepted donation. Failures are logged only.
func (c *donationController) publish(ctx context.Context, result *Result) {
	if c.publisher == nil {
		return
	}

	event := model.DonationRecordedEvent{
		EventID:      uuid.NewString(),
		CampaignID:   result.CampaignID,
		DonorName:    result.Donation.DonorName,
		Amount:       result.Donation.Amount,
		StaleDisplay: result.StaleDisplay,
		RecordedAt:   result.Donation.CreatedAt,
	}
	if err := c.publisher.DonationRecorded(ctx, event); err != nil {
		// The donation is already recorded by the service
		slog.WarnContext(ctx, "failed to publish donation event",
			"error", err,
			"event_id", event.EventID,
		)
	}
}

func (c *donationController) fail(ctx context.Context, span trace.Span, result *Result, err error) (*Result, error) {
	result.transition(StateFailed)
	slog.WarnContext(ctx, "donation failed", "error", err, "state", string(result.Transitions[len(result.Transitions)-2]))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return result, err
}

// submissionError keeps typed submission failures and wraps anything else
func submissionError(err error) error {
	var submission errs.Submission
	if errors.As(err, &submission) {
		return err
	}
	return errs.NewSubmission("donation could not be recorded", err)
}
