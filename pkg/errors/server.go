// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Unexpected represents an unexpected error in the application.
type Unexpected struct {
	base
}

// Error returns the error message for Unexpected.
func (u Unexpected) Error() string {
	return u.error()
}

// Unwrap returns the wrapped error, if any.
func (u Unexpected) Unwrap() error {
	return u.err
}

// NewUnexpected creates a new Unexpected error with the provided message.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// ServiceUnavailable represents a service unavailability error in the application.
type ServiceUnavailable struct {
	base
}

// Error returns the error message for ServiceUnavailable.
func (su ServiceUnavailable) Error() string {
	return su.error()
}

// Unwrap returns the wrapped error, if any.
func (su ServiceUnavailable) Unwrap() error {
	return su.err
}

// NewServiceUnavailable creates a new ServiceUnavailable error with the provided message.
func NewServiceUnavailable(message string, err ...error) ServiceUnavailable {
	return ServiceUnavailable{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Transport represents a remote campaign service that could not be reached or
// answered with a failure. Callers may retry; nothing retries internally.
type Transport struct {
	base
}

// Error returns the error message for Transport.
func (t Transport) Error() string {
	return t.error()
}

// Unwrap returns the wrapped error, if any.
func (t Transport) Unwrap() error {
	return t.err
}

// NewTransport creates a new Transport error with the provided message.
func NewTransport(message string, err ...error) Transport {
	return Transport{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Decode represents a response body that does not have the expected shape.
type Decode struct {
	base
}

// Error returns the error message for Decode.
func (d Decode) Error() string {
	return d.error()
}

// Unwrap returns the wrapped error, if any.
func (d Decode) Unwrap() error {
	return d.err
}

// NewDecode creates a new Decode error with the provided message.
func NewDecode(message string, err ...error) Decode {
	return Decode{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// Submission represents a donation the remote service rejected or failed to record.
type Submission struct {
	base
}

// Error returns the error message for Submission.
func (s Submission) Error() string {
	return s.error()
}

// Unwrap returns the wrapped error, if any.
func (s Submission) Unwrap() error {
	return s.err
}

// NewSubmission creates a new Submission error with the provided message.
func NewSubmission(message string, err ...error) Submission {
	return Submission{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
