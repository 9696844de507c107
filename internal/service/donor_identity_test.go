// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/mock"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

func TestResolveDonorName(t *testing.T) {
	tests := []struct {
		name       string
		setupStore func(*mock.MemorySessionStore)
		expected   string
	}{
		{
			name:       "no session entry",
			setupStore: func(*mock.MemorySessionStore) {},
			expected:   model.AnonymousDonor,
		},
		{
			name: "signed in user",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":"Jordan Lee","email":"jordan@example.org"}`))
			},
			expected: "Jordan Lee",
		},
		{
			name: "name is trimmed",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":"  Jordan  "}`))
			},
			expected: "Jordan",
		},
		{
			name: "blank name",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":"   "}`))
			},
			expected: model.AnonymousDonor,
		},
		{
			name: "record without name",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"email":"jordan@example.org"}`))
			},
			expected: model.AnonymousDonor,
		},
		{
			name: "malformed json",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":`))
			},
			expected: model.AnonymousDonor,
		},
		{
			name: "name is not a string",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":42}`))
			},
			expected: model.AnonymousDonor,
		},
		{
			name: "json null",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`null`))
			},
			expected: model.AnonymousDonor,
		},
		{
			name: "store failure",
			setupStore: func(s *mock.MemorySessionStore) {
				s.Set(constants.SessionUserDataKey, []byte(`{"name":"Jordan"}`))
				s.SetError(errs.NewServiceUnavailable("kv down"))
			},
			expected: model.AnonymousDonor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMemorySessionStore()
			tt.setupStore(store)

			resolver := NewDonorIdentityResolver(store)
			assert.Equal(t, tt.expected, resolver.ResolveDonorName(context.Background()))
		})
	}
}

func TestResolveDonorNameWithoutStore(t *testing.T) {
	resolver := NewDonorIdentityResolver(nil)
	assert.Equal(t, model.AnonymousDonor, resolver.ResolveDonorName(context.Background()))
}
