// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package campaignapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
	"github.com/farhanmansurii/Donate-frontend/pkg/httpclient"
)

// MapReadError maps httpclient errors on campaign reads to Transport errors.
// Every read failure is retryable by the caller; none of them means "not found"
// because the service only exposes the list.
func MapReadError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var retryableErr *httpclient.RetryableError
	if errors.As(err, &retryableErr) {
		slog.WarnContext(ctx, "campaign service HTTP error occurred",
			"status_code", retryableErr.StatusCode,
			"message", retryableErr.Message,
		)

		switch retryableErr.StatusCode {
		case http.StatusTooManyRequests:
			return errs.NewTransport("campaign service rate limited", err)
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return errs.NewTransport("campaign service unavailable", err)
		default:
			return errs.NewTransport(fmt.Sprintf("campaign service answered with status %d", retryableErr.StatusCode), err)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.DebugContext(ctx, "campaign request abandoned", "error", err)
		return errs.NewTransport("campaign request cancelled", err)
	}

	slog.ErrorContext(ctx, "campaign request failed with non-HTTP error",
		"error", err.Error(),
	)
	return errs.NewTransport("campaign service unreachable", err)
}

// MapWriteError maps httpclient errors on the donate call to Submission errors
func MapWriteError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var retryableErr *httpclient.RetryableError
	if errors.As(err, &retryableErr) {
		slog.WarnContext(ctx, "campaign service rejected donation",
			"status_code", retryableErr.StatusCode,
			"message", retryableErr.Message,
		)

		switch {
		case retryableErr.StatusCode == http.StatusNotFound:
			return errs.NewSubmission("campaign no longer exists", err)
		case retryableErr.StatusCode == http.StatusConflict:
			return errs.NewSubmission("donation already recorded", err)
		case retryableErr.StatusCode < http.StatusInternalServerError:
			return errs.NewSubmission(fmt.Sprintf("donation rejected: %s", retryableErr.Message), err)
		default:
			return errs.NewSubmission("campaign service failed to record the donation", err)
		}
	}

	slog.ErrorContext(ctx, "donation request failed with non-HTTP error",
		"error", err.Error(),
	)
	return errs.NewSubmission("donation could not be sent", err)
}
