package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/apitest"
	"github.com/MKhiriev/sterling-client/models"
)

func ptr[T any](v T) *T { return &v }

func cachedReservation(t *testing.T, e *env, id int64) models.Reservation {
	t.Helper()
	snap, ok := e.cache.Read(context.Background())
	require.True(t, ok)
	for _, r := range snap.Reservations {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("reservation %d not cached", id)
	return models.Reservation{}
}

// ── attendee counter ──

func TestRemoveAttendee_CountDownToZeroAndStays(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	e.api.Attendees[5] = []models.Attendee{{ID: 50, ReservationID: 5, Name: "A"}, {ID: 51, ReservationID: 5, Name: "B"}}
	loadReady(t, e)

	require.NoError(t, e.data.RemoveAttendee(ctx, 5, 50))
	res, _ := e.data.Reservation(5)
	assert.Equal(t, 1, res.AttendeeCount)
	assert.Equal(t, 1, cachedReservation(t, e, 5).AttendeeCount)

	require.NoError(t, e.data.RemoveAttendee(ctx, 5, 51))
	res, _ = e.data.Reservation(5)
	assert.Equal(t, 0, res.AttendeeCount)

	// a stale re-click
	require.NoError(t, e.data.RemoveAttendee(ctx, 5, 51))
	res, _ = e.data.Reservation(5)
	assert.Equal(t, 0, res.AttendeeCount)
	assert.Equal(t, 0, cachedReservation(t, e, 5).AttendeeCount)
}

func TestRemoveAttendee_FloorAtZero(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	e.api.Reservations[0].AttendeeCount = 0
	loadReady(t, e)

	for range 5 {
		require.NoError(t, e.data.RemoveAttendee(ctx, 5, 1))
		res, _ := e.data.Reservation(5)
		require.Equal(t, 0, res.AttendeeCount)
	}
}

func TestAddAttendee_IncrementsAfterConfirmation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)

	a, err := e.data.AddAttendee(ctx, 5, models.NewAttendee{MemberID: ptr(int64(3))})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.False(t, a.IsGuest())

	res, _ := e.data.Reservation(5)
	assert.Equal(t, 3, res.AttendeeCount)
	assert.Equal(t, 3, cachedReservation(t, e, 5).AttendeeCount)

	guest, err := e.data.AddAttendee(ctx, 5, models.NewAttendee{Name: "Guest"})
	require.NoError(t, err)
	assert.True(t, guest.IsGuest())
}

func TestAttendeeFailures_LeaveCountUntouched(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)
	e.api.Fail(http.MethodPost, "/reservations/5/attendees/", http.StatusBadRequest, apitest.Always, "Reservation is full")
	e.api.Fail(http.MethodDelete, "/reservations/5/attendees/50/", http.StatusInternalServerError, apitest.Always, nil)

	a, err := e.data.AddAttendee(ctx, 5, models.NewAttendee{Name: "Guest"})
	require.Error(t, err)
	assert.Nil(t, a)
	assert.Equal(t, "Reservation is full", adapter.UserMessage(err))

	require.Error(t, e.data.RemoveAttendee(ctx, 5, 50))

	res, _ := e.data.Reservation(5)
	assert.Equal(t, 2, res.AttendeeCount)
	assert.Equal(t, 2, cachedReservation(t, e, 5).AttendeeCount)
}

func TestAddAttendee_Validation(t *testing.T) {
	e := newEnv(t)
	seed(e)
	loadReady(t, e)
	calls := e.api.TotalCalls()

	_, err := e.data.AddAttendee(context.Background(), 5, models.NewAttendee{})
	assert.ErrorIs(t, err, ErrInvalidAttendee)
	_, err = e.data.AddAttendee(context.Background(), 5, models.NewAttendee{MemberID: ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidAttendee)
	_, err = e.data.AddAttendee(context.Background(), 0, models.NewAttendee{Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, calls, e.api.TotalCalls())
}

func TestFetchAttendees(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	e.api.Attendees[5] = []models.Attendee{{ID: 50, ReservationID: 5, Name: "A"}}
	loadReady(t, e)

	got, err := e.data.FetchAttendees(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, e.api.Attendees[5], got)

	got, err = e.data.FetchAttendees(ctx, 6)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	before := e.api.Calls(http.MethodGet, "/reservations/5/attendees/")
	e.api.Fail(http.MethodGet, "/reservations/5/attendees/", http.StatusInternalServerError, apitest.Always, nil)
	got, err = e.data.FetchAttendees(ctx, 5)
	require.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 3, e.api.Calls(http.MethodGet, "/reservations/5/attendees/")-before)
}

// ── writes are attempted once ──

func TestWritesAreNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		call   func(ctx context.Context, d DataSynchronizer) error
	}{
		{"create reservation", http.MethodPost, "/reservations/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.CreateReservation(ctx, models.NewReservation{DiningRoomID: 1, Date: "2026-12-01", MealType: models.MealLunch, StartTime: "12:00", EndTime: "13:00"})
			return err
		}},
		{"update reservation", http.MethodPatch, "/reservations/5/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.UpdateReservation(ctx, 5, models.ReservationUpdate{Notes: ptr("x")})
			return err
		}},
		{"delete reservation", http.MethodDelete, "/reservations/5/", func(ctx context.Context, d DataSynchronizer) error {
			return d.DeleteReservation(ctx, 5)
		}},
		{"add attendee", http.MethodPost, "/reservations/5/attendees/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.AddAttendee(ctx, 5, models.NewAttendee{Name: "G"})
			return err
		}},
		{"remove attendee", http.MethodDelete, "/reservations/5/attendees/9/", func(ctx context.Context, d DataSynchronizer) error {
			return d.RemoveAttendee(ctx, 5, 9)
		}},
		{"create member", http.MethodPost, "/members/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.CreateMember(ctx, models.NewMember{Name: "Cleo"})
			return err
		}},
		{"update member", http.MethodPatch, "/members/3/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.UpdateMember(ctx, 3, models.MemberUpdate{Name: ptr("B")})
			return err
		}},
		{"delete member", http.MethodDelete, "/members/3/", func(ctx context.Context, d DataSynchronizer) error {
			return d.DeleteMember(ctx, 3)
		}},
		{"update room", http.MethodPatch, "/admin/dining-rooms/1/", func(ctx context.Context, d DataSynchronizer) error {
			_, err := d.UpdateDiningRoom(ctx, 1, models.DiningRoomUpdate{IsActive: ptr(false)})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			e := newEnv(t)
			seed(e)
			loadReady(t, e)
			before, _ := e.cache.Read(ctx)
			e.api.Fail(tt.method, tt.path, http.StatusServiceUnavailable, apitest.Always, nil)

			err := tt.call(ctx, e.data)

			require.Error(t, err)
			assert.Equal(t, 1, e.api.Calls(tt.method, tt.path))
			assert.Equal(t, e.api.Reservations, e.data.Reservations())
			assert.Equal(t, e.api.Members, e.data.Members())
			assert.Equal(t, e.api.Rooms, e.data.DiningRooms())
			after, ok := e.cache.Read(ctx)
			require.True(t, ok)
			assert.Equal(t, before, after)
		})
	}
}

// ── reservations ──

func TestCreateReservation_AppendsAndCaches(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)

	res, err := e.data.CreateReservation(ctx, models.NewReservation{
		DiningRoomID: 2, Date: "2026-12-24", MealType: models.MealEvent, StartTime: "18:00", EndTime: "23:00", Notes: "party",
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	all := e.data.Reservations()
	require.Len(t, all, 2)
	assert.Equal(t, *res, all[1])
	assert.Equal(t, *res, cachedReservation(t, e, res.ID))
}

func TestCreateReservation_Validation(t *testing.T) {
	valid := models.NewReservation{DiningRoomID: 1, Date: "2026-12-01", MealType: models.MealLunch, StartTime: "12:00", EndTime: "13:00"}
	tests := []struct {
		name   string
		mutate func(*models.NewReservation)
	}{
		{"no room", func(r *models.NewReservation) { r.DiningRoomID = 0 }},
		{"bad date", func(r *models.NewReservation) { r.Date = "01/12/2026" }},
		{"bad meal", func(r *models.NewReservation) { r.MealType = "brunch" }},
		{"no start", func(r *models.NewReservation) { r.StartTime = " " }},
		{"no end", func(r *models.NewReservation) { r.EndTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			e.signIn(t)
			req := valid
			tt.mutate(&req)

			res, err := e.data.CreateReservation(context.Background(), req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrInvalidReservation)
			assert.Zero(t, e.api.TotalCalls())
		})
	}
}

func TestUpdateReservation_ReplacesEntry(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)

	res, err := e.data.UpdateReservation(ctx, 5, models.ReservationUpdate{Notes: ptr("window seat"), Status: ptr(models.StatusCancelled)})

	require.NoError(t, err)
	assert.Equal(t, "window seat", res.Notes)
	got, _ := e.data.Reservation(5)
	assert.Equal(t, *res, got)
	assert.Len(t, e.data.Reservations(), 1)
	assert.Equal(t, models.StatusCancelled, cachedReservation(t, e, 5).Status)

	_, err = e.data.UpdateReservation(ctx, 5, models.ReservationUpdate{Status: ptr(models.ReservationStatus("pending"))})
	assert.ErrorIs(t, err, ErrInvalidReservation)
}

func TestUpdates_UnknownIDLeavesCollectionsAlone(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	e.api.User.IsAdmin = true
	loadReady(t, e)

	// entries created elsewhere after the load
	e.api.Reservations = append(e.api.Reservations, models.Reservation{ID: 9, DiningRoomID: 2, Date: "2026-11-09"})
	e.api.Members = append(e.api.Members, models.Member{ID: 8, UserID: 1, Name: "Dora"})
	e.api.Rooms = append(e.api.Rooms, models.DiningRoom{ID: 7, Name: "Library", Capacity: 8})

	res, err := e.data.UpdateReservation(ctx, 9, models.ReservationUpdate{Notes: ptr("late")})
	require.NoError(t, err)
	assert.Equal(t, "late", res.Notes)
	assert.Len(t, e.data.Reservations(), 1)
	_, ok := e.data.Reservation(9)
	assert.False(t, ok)

	_, err = e.data.UpdateMember(ctx, 8, models.MemberUpdate{DietaryRestrictions: ptr("none")})
	require.NoError(t, err)
	assert.Len(t, e.data.Members(), 1)

	_, err = e.data.UpdateDiningRoom(ctx, 7, models.DiningRoomUpdate{Capacity: ptr(10)})
	require.NoError(t, err)
	assert.Len(t, e.data.DiningRooms(), 2)

	snap, ok := e.cache.Read(ctx)
	require.True(t, ok)
	assert.Len(t, snap.Reservations, 1)
	assert.Len(t, snap.Members, 1)
	assert.Len(t, snap.Rooms, 2)
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)

	require.NoError(t, e.data.DeleteReservation(ctx, 5))

	assert.Empty(t, e.data.Reservations())
	snap, ok := e.cache.Read(ctx)
	require.True(t, ok)
	assert.Empty(t, snap.Reservations)

	err := e.data.DeleteReservation(ctx, 5)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestFetchReservation_Upserts(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)
	e.api.Reservations = append(e.api.Reservations, models.Reservation{ID: 6, DiningRoomID: 2, Date: "2026-11-02"})
	e.api.Reservations[0].Notes = "changed on server"

	got, err := e.data.FetchReservation(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.ID)
	assert.Len(t, e.data.Reservations(), 2)

	got, err = e.data.FetchReservation(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "changed on server", got.Notes)
	assert.Len(t, e.data.Reservations(), 2)
	assert.Equal(t, "changed on server", cachedReservation(t, e, 5).Notes)

	got, err = e.data.FetchReservation(ctx, 0)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidID)

	got, err = e.data.FetchReservation(ctx, 404)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, 1, e.api.Calls(http.MethodGet, "/reservations/404/"))
}

// ── members ──

func TestMemberLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)

	m, err := e.data.CreateMember(ctx, models.NewMember{Name: "Cleo", Relation: "daughter"})
	require.NoError(t, err)
	assert.Len(t, e.data.Members(), 2)

	updated, err := e.data.UpdateMember(ctx, m.ID, models.MemberUpdate{DietaryRestrictions: ptr("vegan")})
	require.NoError(t, err)
	assert.Equal(t, "vegan", updated.DietaryRestrictions)

	snap, ok := e.cache.Read(ctx)
	require.True(t, ok)
	assert.Equal(t, e.data.Members(), snap.Members)

	require.NoError(t, e.data.DeleteMember(ctx, 3))
	assert.Equal(t, []models.Member{*updated}, e.data.Members())

	_, err = e.data.CreateMember(ctx, models.NewMember{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidMember)
}

// ── dining rooms ──

func TestFetchDiningRooms_ReplacesRooms(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	loadReady(t, e)
	e.api.Rooms = []models.DiningRoom{{ID: 7, Name: "Library", Capacity: 8}}

	rooms, err := e.data.FetchDiningRooms(ctx)

	require.NoError(t, err)
	assert.Equal(t, e.api.Rooms, rooms)
	assert.Equal(t, e.api.Rooms, e.data.DiningRooms())
	snap, _ := e.cache.Read(ctx)
	assert.Equal(t, e.api.Rooms, snap.Rooms)
}

func TestUpdateDiningRoom(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	e.api.User.IsAdmin = true
	loadReady(t, e)

	room, err := e.data.UpdateDiningRoom(ctx, 2, models.DiningRoomUpdate{Capacity: ptr(40), IsActive: ptr(false)})

	require.NoError(t, err)
	assert.Equal(t, 40, room.Capacity)
	got, ok := e.data.DiningRoom(2)
	require.True(t, ok)
	assert.False(t, got.IsActive)
	assert.Len(t, e.data.DiningRooms(), 2)
}
