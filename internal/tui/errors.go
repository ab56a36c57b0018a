// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/sterling-client/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	return adapter.UserMessage(err)
}
