// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import (
	"fmt"

	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// Source constants select which implementation backs a port
const (
	// SourceHTTP talks to the remote campaign service
	SourceHTTP = "http"

	// SourceNATS reads session state from a NATS JetStream key-value bucket
	SourceNATS = "nats"

	// SourceMemory keeps state in process memory
	SourceMemory = "memory"

	// SourceMock uses the in-memory fakes with sample data
	SourceMock = "mock"
)

// ValidateSource validates that source is one of the allowed values
func ValidateSource(source string, allowed ...string) error {
	if source == "" {
		return errors.NewValidation("source is required")
	}
	for _, a := range allowed {
		if source == a {
			return nil
		}
	}
	return errors.NewValidation(
		fmt.Sprintf("unsupported source: %s (must be one of %v)", source, allowed))
}
