package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/sterling-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseUnverifiedToken] for a blank string.
var ErrEmptyToken = errors.New("empty token")

// ParseUnverifiedToken decodes the registered claims of a compact JWT without
// checking its signature. The signing key belongs to the Sterling API; the
// client only reads the claims (expiry, subject) to skip calls that are bound
// to fail.
//
// Example usage:
//
//	token, err := utils.ParseUnverifiedToken(raw)
//	if err == nil && token.Expired(time.Now()) {
//	    // drop the credential
//	}
func ParseUnverifiedToken(raw string) (models.Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Token{}, ErrEmptyToken
	}

	token := models.Token{Raw: raw}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &token.RegisteredClaims); err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
