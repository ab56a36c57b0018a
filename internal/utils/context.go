// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, request identifiers, JSON
// sanitising, HTTP response writing, HTTP client initialization and
// unverified JWT parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the outbound request identifier in
// the context. Operations that issue several HTTP calls (a retried read, the
// three parallel fetches of an initial load) attach one identifier so that
// every call of the operation is logged under the same X-Request-ID.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true : a non-empty string value is found
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
