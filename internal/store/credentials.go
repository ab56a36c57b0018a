package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/sterling-client/internal/logger"
)

// TokenKey is the storage key of the session credential.
const TokenKey = "token"

// CredentialStore persists the bearer token of the signed-in user.
type CredentialStore struct {
	storage StorageService
	logger  *logger.Logger
}

// NewCredentialStore returns a CredentialStore on top of storage.
func NewCredentialStore(storage StorageService, log *logger.Logger) *CredentialStore {
	return &CredentialStore{storage: storage, logger: log}
}

// Token returns the stored token, or "" when there is none or the storage
// cannot be read.
func (c *CredentialStore) Token(ctx context.Context) string {
	token, ok, err := c.storage.Get(ctx, TokenKey)
	if err != nil {
		c.logger.Err(err).Str("func", "*CredentialStore.Token").Msg("error reading token")
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// SetToken stores token, replacing the previous one.
func (c *CredentialStore) SetToken(ctx context.Context, token string) error {
	return c.storage.Set(ctx, TokenKey, strings.TrimSpace(token))
}

// ClearToken removes the stored token.
func (c *CredentialStore) ClearToken(ctx context.Context) error {
	return c.storage.Remove(ctx, TokenKey)
}
