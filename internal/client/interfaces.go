// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/sterling-client/internal/tui"
	"github.com/MKhiriev/sterling-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// LoginFlow blocks until a user is signed in. notice is shown on the
	// first screen when set.
	LoginFlow(ctx context.Context, notice string) (models.User, error)
	// MainLoop blocks until the user leaves the dashboard.
	MainLoop(ctx context.Context, user models.User) (tui.Exit, error)
}
