package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewRequestID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 when the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RequestID returns the identifier attached to ctx by [WithRequestID], or a
// new one.
func RequestID(ctx context.Context) string {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return id
	}
	return NewRequestID()
}
