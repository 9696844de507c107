// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// kvGetter is the part of jetstream.KeyValue the session store needs
type kvGetter interface {
	Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error)
}

type sessionStore struct {
	kv        kvGetter
	sessionID string
	timeout   time.Duration
}

// Get reads one entry of the configured session
func (s *sessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errs.NewValidation("session key cannot be empty")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	kvKey := sessionKey(s.sessionID, key)
	slog.DebugContext(ctx, "nats session store: getting entry", "key", kvKey)

	entry, err := s.kv.Get(ctx, kvKey)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
			slog.DebugContext(ctx, "session entry not found", "key", kvKey)
			return nil, errs.NewNotFound(fmt.Sprintf("session entry %q not found", key))
		}
		slog.ErrorContext(ctx, "failed to get session entry", "error", err, "key", kvKey)
		return nil, errs.NewServiceUnavailable("failed to get session entry", err)
	}

	slog.DebugContext(ctx, "nats session store: entry retrieved",
		"key", kvKey,
		"revision", entry.Revision(),
	)

	return entry.Value(), nil
}

// sessionKey scopes an entry to a session. Without a session ID the bare
// entry name is used.
func sessionKey(sessionID, key string) string {
	if sessionID == "" {
		return key
	}
	return fmt.Sprintf(constants.KVSessionKeyFormat, sessionID, key)
}

// NewSessionStore creates a SessionStore reading the given session from the session bucket
func NewSessionStore(client *NATSClient, sessionID string) (port.SessionStore, error) {
	kv, ok := client.bucket(client.config.SessionBucket)
	if !ok {
		return nil, errs.NewServiceUnavailable(fmt.Sprintf("bucket %s is not open", client.config.SessionBucket))
	}
	return &sessionStore{
		kv:        kv,
		sessionID: sessionID,
		timeout:   client.timeout,
	}, nil
}
