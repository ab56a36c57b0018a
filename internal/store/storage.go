// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client's local persistence: a string key/value
// [StorageService] (sqlite or in-memory) and the typed stores built on it,
// namely the session credential, the snapshot cache and user preferences.
package store

import "context"

//go:generate mockgen -source=storage.go -destination=../mock/storage_mock.go -package=mock -exclude_interfaces=CredentialSource

// StorageService is a persistent string key/value store. Keys are opaque;
// the stores of this package own the key names.
type StorageService interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// CredentialSource provides the bearer token of the current session.
type CredentialSource interface {
	Token(ctx context.Context) string
}
