package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenResponse is the body returned by POST /users/login.
type TokenResponse struct {
	// AccessToken is the bearer token attached to every authenticated call.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for the Sterling API.
	TokenType string `json:"token_type"`

	// User is the signed-in account.
	User User `json:"user"`
}

// Token holds the claims of a session credential decoded without signature
// verification. The client cannot verify the signature (the key lives on the
// server); it only reads the expiry to avoid calls that are bound to fail.
type Token struct {
	jwt.RegisteredClaims

	// Raw is the compact token string as stored in the credential store.
	Raw string `json:"-"`
}

// Expired reports whether the token carries an "exp" claim that lies before
// now. Tokens without an expiry never expire on the client side.
func (t Token) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(t.ExpiresAt.Time)
}

// String returns the compact token string.
func (t Token) String() string {
	return t.Raw
}
