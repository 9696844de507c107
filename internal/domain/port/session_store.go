// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// SessionStore is a read-only view of the locally persisted session state
type SessionStore interface {
	// Get returns the raw value stored under key. Implementations return
	// errors.NotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
}
