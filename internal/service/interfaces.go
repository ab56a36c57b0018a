// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sterling-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialSource

// SnapshotCache is the time-boxed per-credential snapshot of the three
// primary collections. Implementations never fail; every problem reads as a
// miss.
type SnapshotCache interface {
	Read(ctx context.Context) (models.Snapshot, bool)
	Write(ctx context.Context, rooms []models.DiningRoom, reservations []models.Reservation, members []models.Member)
	Clear(ctx context.Context)
	// ClearFor drops the snapshot of a specific token, which may no longer
	// be the active one.
	ClearFor(ctx context.Context, token string)
}

// CredentialSource provides the bearer token of the current session.
type CredentialSource interface {
	Token(ctx context.Context) string
}

// Session stores and drops the session credential.
type Session interface {
	CredentialSource
	// Begin replaces the stored token.
	Begin(ctx context.Context, token string) error
	// End clears the token and navigates to the login route.
	End(ctx context.Context) error
}

// DataSynchronizer owns rooms, reservations and members for the lifetime of
// a session.
//
// Every method reports failure through its error and leaves memory and cache
// untouched in that case. Read accessors return copies.
type DataSynchronizer interface {
	// State returns the current load state.
	State() State
	// Loading reports whether a load is in progress.
	Loading() bool

	// Load adopts a fresh cached snapshot, or fetches the three collections
	// concurrently. Any fetch failure clears the cache and leaves the
	// collections empty. It returns the resulting state.
	Load(ctx context.Context) State
	// Refresh refetches all three collections, bypassing the cache. On
	// failure nothing changes and the error is returned.
	Refresh(ctx context.Context) error
	// Reset drops all in-memory state.
	Reset()

	DiningRooms() []models.DiningRoom
	Reservations() []models.Reservation
	Members() []models.Member
	// Reservation looks up a reservation in memory.
	Reservation(id int64) (models.Reservation, bool)
	// DiningRoom looks up a room in memory. A reservation whose room is not
	// found has no location assigned.
	DiningRoom(id int64) (models.DiningRoom, bool)

	FetchReservation(ctx context.Context, id int64) (*models.Reservation, error)
	CreateReservation(ctx context.Context, req models.NewReservation) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, upd models.ReservationUpdate) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	// FetchAttendees returns the attendees of a reservation. The result is
	// not kept; on failure it is an empty, non-nil slice.
	FetchAttendees(ctx context.Context, reservationID int64) ([]models.Attendee, error)
	AddAttendee(ctx context.Context, reservationID int64, req models.NewAttendee) (*models.Attendee, error)
	RemoveAttendee(ctx context.Context, reservationID, attendeeID int64) error

	CreateMember(ctx context.Context, req models.NewMember) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, upd models.MemberUpdate) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	FetchDiningRooms(ctx context.Context) ([]models.DiningRoom, error)
	UpdateDiningRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (*models.DiningRoom, error)
}

// AuthService signs the user in and out.
type AuthService interface {
	// Login exchanges credentials for a token, replacing any stored one.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Signup creates an account and signs in with it.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	// RestoreSession resumes the session of a stored token. A token the
	// server rejects, or one that has expired locally, is cleared.
	RestoreSession(ctx context.Context) (models.User, error)
	// Logout clears the token and navigates to the login route.
	Logout(ctx context.Context) error
	// CurrentUser returns the signed-in user.
	CurrentUser() (models.User, bool)
}

// RulesService shows the club fee rules and the fees of a reservation. Fees
// are computed by the server.
type RulesService interface {
	Rules(ctx context.Context) ([]models.Rule, error)
	ReservationFees(ctx context.Context, reservationID int64) ([]models.Fee, error)
	TotalFees(ctx context.Context, reservationID int64) (float64, error)
}

// AdminService is the administrator surface. Every method fails with
// [ErrAdminRequired] unless the signed-in user is an administrator.
type AdminService interface {
	Stats(ctx context.Context) (models.AdminStats, error)
	Users(ctx context.Context) ([]models.User, error)
	Reservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	Members(ctx context.Context, search string) ([]models.Member, error)
	Rules(ctx context.Context) ([]models.Rule, error)
	UpdateRule(ctx context.Context, id int64, upd models.RuleUpdate) (*models.Rule, error)
	DeleteReservation(ctx context.Context, id int64) error
	DeleteMember(ctx context.Context, id int64) error
	RefreshRooms(ctx context.Context) ([]models.DiningRoom, error)
	UpdateRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (*models.DiningRoom, error)
	// DownloadDailyReport saves the PDF report of date into dir and returns
	// the file path.
	DownloadDailyReport(ctx context.Context, date, dir string) (string, error)
}

// ReconcileJob periodically refreshes the synchroniser so that locally
// adjusted counters converge on the server's values.
type ReconcileJob interface {
	// Start launches the job. A non-positive interval selects
	// [DefaultReconcileInterval]. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for it to exit.
	Stop()
}
