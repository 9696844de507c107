// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/domain/port"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
	"github.com/farhanmansurii/Donate-frontend/pkg/errors"
)

// MemorySessionStore keeps session entries in process memory
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	err     error
}

// Ensure MemorySessionStore implements the SessionStore interface
var _ port.SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{entries: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (s *MemorySessionStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}
	value, ok := s.entries[key]
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("session entry %q not found", key))
	}
	return append([]byte(nil), value...), nil
}

// Set stores a raw value
func (s *MemorySessionStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), value...)
}

// SetUserData stores the signed-in user's record under the user data key
func (s *MemorySessionStore) SetUserData(record model.SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	s.Set(constants.SessionUserDataKey, data)
	return nil
}

// Delete removes a stored value
func (s *MemorySessionStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// SetError makes every Get fail with err; nil restores normal behaviour
func (s *MemorySessionStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
