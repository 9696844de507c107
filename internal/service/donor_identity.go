// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
)

// DonorIdentityResolver derives the default donor name from the session
type DonorIdentityResolver interface {
	// ResolveDonorName never fails; it falls back to model.AnonymousDonor
	ResolveDonorName(ctx context.Context) string
}

type donorIdentityResolver struct {
	store port.SessionStore
}

// NewDonorIdentityResolver creates a resolver reading the given session store.
// A nil store always resolves to the anonymous donor.
func NewDonorIdentityResolver(store port.SessionStore) DonorIdentityResolver {
	return &donorIdentityResolver{store: store}
}

// ResolveDonorName returns the signed-in user's name or "Anonymous"
func (r *donorIdentityResolver) ResolveDonorName(ctx context.Context) string {
	if r.store == nil {
		return model.AnonymousDonor
	}

	raw, err := r.store.Get(ctx, constants.SessionUserDataKey)
	if err != nil {
		slog.DebugContext(ctx, "no session user data, donating anonymously", "error", err)
		return model.AnonymousDonor
	}

	var record model.SessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		slog.DebugContext(ctx, "session user data is not a user record", "error", err)
		return model.AnonymousDonor
	}

	name := strings.TrimSpace(record.Name)
	if name == "" {
		return model.AnonymousDonor
	}
	return name
}
