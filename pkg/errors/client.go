// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"fmt"
)

// Validation represents bad user input. Field names the offending input when known.
type Validation struct {
	base
	Field  string
	Reason string
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// Unwrap returns the wrapped error, if any.
func (v Validation) Unwrap() error {
	return v.err
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
		Reason: message,
	}
}

// NewFieldValidation creates a Validation error bound to a single input field.
func NewFieldValidation(field, reason string, err ...error) Validation {
	return Validation{
		base: base{
			message: fmt.Sprintf("invalid %s: %s", field, reason),
			err:     errors.Join(err...),
		},
		Field:  field,
		Reason: reason,
	}
}

// NotFound represents a lookup miss.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (n NotFound) Error() string {
	return n.error()
}

// Unwrap returns the wrapped error, if any.
func (n NotFound) Unwrap() error {
	return n.err
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Conflict represents a conflict reported by the remote service.
type Conflict struct {
	base
}

// Error returns the error message for Conflict.
func (c Conflict) Error() string {
	return c.error()
}

// Unwrap returns the wrapped error, if any.
func (c Conflict) Unwrap() error {
	return c.err
}

// NewConflict creates a new Conflict error with the provided message.
func NewConflict(message string, err ...error) Conflict {
	return Conflict{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Unauthorized represents a rejected credential.
type Unauthorized struct {
	base
}

// Error returns the error message for Unauthorized.
func (u Unauthorized) Error() string {
	return u.error()
}

// Unwrap returns the wrapped error, if any.
func (u Unauthorized) Unwrap() error {
	return u.err
}

// NewUnauthorized creates a new Unauthorized error with the provided message.
func NewUnauthorized(message string, err ...error) Unauthorized {
	return Unauthorized{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Busy is returned when a submission for the same campaign is already in flight.
type Busy struct {
	base
	CampaignID string
}

// Error returns the error message for Busy.
func (b Busy) Error() string {
	return b.error()
}

// Unwrap returns the wrapped error, if any.
func (b Busy) Unwrap() error {
	return b.err
}

// NewBusy creates a new Busy error for the given campaign.
func NewBusy(campaignID string) Busy {
	return Busy{
		base: base{
			message: "a donation for this campaign is already being submitted, please wait",
		},
		CampaignID: campaignID,
	}
}

// InvalidGoal reports a campaign goal that cannot be used to compute progress.
type InvalidGoal struct {
	base
	Goal float64
}

// Error returns the error message for InvalidGoal.
func (i InvalidGoal) Error() string {
	return i.error()
}

// Unwrap returns the wrapped error, if any.
func (i InvalidGoal) Unwrap() error {
	return i.err
}

// NewInvalidGoal creates a new InvalidGoal error for the given goal value.
func NewInvalidGoal(goal float64) InvalidGoal {
	return InvalidGoal{
		base: base{
			message: fmt.Sprintf("goal must be a positive finite number, got %v", goal),
		},
		Goal: goal,
	}
}
