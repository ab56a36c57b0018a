package service

import "errors"

var (
	ErrNoSession          = errors.New("no active session")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrInvalidMember      = errors.New("invalid member")
	ErrInvalidAttendee    = errors.New("invalid attendee")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyCredentials   = errors.New("email and password are required")

	// ErrInvalidCredentials is shown when the API rejects a login.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrTokenIsExpired     = errors.New("token is expired")
	ErrAdminRequired      = errors.New("administrator access required")
)
