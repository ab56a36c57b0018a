// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and background reconciliation
// into a single process lifecycle: restore or sign in, load, run the main
// loop, and start over after a logout or an expired session.
package client
