// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// SessionRecord is the user data persisted for the current session.
// Only the name is read by the donation workflow.
type SessionRecord struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
