// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"fmt"
	"time"
)

// timestampLayouts are the formats the campaign service has been seen to emit
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.000", time.DateTime, time.DateOnly}

// ParseTimestamp parses a service timestamp. An empty value yields the zero time.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}
