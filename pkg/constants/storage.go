// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

const (
	// KVBucketNameSessions is the name of the KV bucket holding session state.
	KVBucketNameSessions = "donate-sessions"

	// SessionUserDataKey is the session entry holding the signed-in user's record
	SessionUserDataKey = "userData"

	// KVSessionKeyFormat scopes a session entry to one session: <session_id>.<entry>
	KVSessionKeyFormat = "%s.%s"
)
