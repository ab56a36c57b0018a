// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the Sterling client
// and the Sterling REST API.
//
// [Requester] performs one authenticated JSON call with a bounded wait and a
// normalised error taxonomy (see errors.go). [ServerAdapter] builds on it
// with one typed method per API endpoint, so that services never deal with
// paths or payload shapes.
//
// Every collection and item route is issued with a trailing slash
// ("/reservations/", "/reservations/5/"); action routes ("/users/login",
// "/users/me", "/admin/reports/daily-pdf") are issued without one. The API
// answers the other spelling with a 307 redirect.
package adapter

import (
	"context"

	"github.com/MKhiriev/sterling-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CredentialSource provides the bearer token of the current session. An
// empty string means no session.
type CredentialSource interface {
	Token(ctx context.Context) string
}

// SessionInvalidator is notified when the API rejects the credential with
// 401. Implementations drop the stored credential and send the user to the
// login entry point.
type SessionInvalidator interface {
	InvalidateSession(ctx context.Context)
}

// ServerAdapter is the typed Sterling API. List methods never return nil
// slices and drop null or non-object elements of the response array.
type ServerAdapter interface {
	// Login exchanges credentials for a bearer token. A 401 is reported as
	// an [*APIError] unwrapping to [ErrUnauthorized], not as a session
	// expiry.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Signup creates an account. It does not sign in.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// CurrentUser returns the account owning the current token.
	CurrentUser(ctx context.Context) (models.User, error)

	DiningRooms(ctx context.Context) ([]models.DiningRoom, error)
	// UpdateDiningRoom is an admin-only partial update.
	UpdateDiningRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (models.DiningRoom, error)

	Reservations(ctx context.Context) ([]models.Reservation, error)
	Reservation(ctx context.Context, id int64) (models.Reservation, error)
	CreateReservation(ctx context.Context, req models.NewReservation) (models.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, upd models.ReservationUpdate) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	Attendees(ctx context.Context, reservationID int64) ([]models.Attendee, error)
	AddAttendee(ctx context.Context, reservationID int64, req models.NewAttendee) (models.Attendee, error)
	RemoveAttendee(ctx context.Context, reservationID, attendeeID int64) error

	Members(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, req models.NewMember) (models.Member, error)
	UpdateMember(ctx context.Context, id int64, upd models.MemberUpdate) (models.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	Rules(ctx context.Context) ([]models.Rule, error)
	// ReservationFees returns the fees the server computed for a reservation.
	ReservationFees(ctx context.Context, reservationID int64) ([]models.Fee, error)

	AdminStats(ctx context.Context) (models.AdminStats, error)
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminReservations(ctx context.Context) ([]models.Reservation, error)
	AdminMembers(ctx context.Context) ([]models.Member, error)
	AdminRules(ctx context.Context) ([]models.Rule, error)
	AdminUpdateRule(ctx context.Context, id int64, upd models.RuleUpdate) (models.Rule, error)
	AdminDeleteReservation(ctx context.Context, id int64) error
	AdminDeleteMember(ctx context.Context, id int64) error
	// DailyReport downloads the PDF report for date (YYYY-MM-DD).
	DailyReport(ctx context.Context, date string) ([]byte, error)
}
