package service

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/mock"
	"github.com/MKhiriev/sterling-client/models"
)

func newTestAdminSvc(t *testing.T, e *env, isAdmin bool) AdminService {
	t.Helper()
	e.api.User.IsAdmin = isAdmin
	auth := NewAuthService(e.adapter, e.session, logger.Nop())
	_, err := auth.Login(context.Background(), models.LoginRequest{Email: e.api.User.Email, Password: "secret"})
	require.NoError(t, err)
	return NewAdminService(e.adapter, auth, e.data, e.reads, logger.Nop())
}

// ── guard ──

func TestAdminService_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := newTestAdminSvc(t, e, false)
	calls := e.api.TotalCalls()

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.Users(ctx)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.Reservations(ctx, models.ReservationFilter{})
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.Members(ctx, "")
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.Rules(ctx)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.UpdateRule(ctx, 1, models.RuleUpdate{})
	assert.ErrorIs(t, err, ErrAdminRequired)
	assert.ErrorIs(t, svc.DeleteReservation(ctx, 1), ErrAdminRequired)
	assert.ErrorIs(t, svc.DeleteMember(ctx, 1), ErrAdminRequired)
	_, err = svc.RefreshRooms(ctx)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.UpdateRoom(ctx, 1, models.DiningRoomUpdate{})
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = svc.DownloadDailyReport(ctx, "2026-11-01", t.TempDir())
	assert.ErrorIs(t, err, ErrAdminRequired)

	assert.Equal(t, calls, e.api.TotalCalls())
}

func TestAdminService_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().CurrentUser().Return(models.User{}, false)
	svc := NewAdminService(mock.NewMockServerAdapter(ctrl), auth, mock.NewMockDataSynchronizer(ctrl), testPolicy(), logger.Nop())

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrAdminRequired)
}

// ── reads ──

func TestAdminService_Stats(t *testing.T) {
	e := newEnv(t)
	e.api.Stats = models.AdminStats{TotalUsers: 4, TotalReservations: 9, TotalMembers: 11, TotalRevenue: 420.5}
	svc := newTestAdminSvc(t, e, true)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, e.api.Stats, stats)
}

func TestAdminService_ReservationFilter(t *testing.T) {
	e := newEnv(t)
	e.api.Reservations = []models.Reservation{
		{ID: 1, DiningRoomID: 1, Date: "2026-11-01", Notes: "Birthday dinner", Status: models.StatusConfirmed},
		{ID: 2, DiningRoomID: 2, Date: "2026-11-02", Notes: "", Status: models.StatusCancelled},
		{ID: 3, DiningRoomID: 1, Date: "2026-12-24", Notes: "Holiday", Status: models.StatusConfirmed},
	}
	svc := newTestAdminSvc(t, e, true)

	ids := func(filter models.ReservationFilter) []int64 {
		t.Helper()
		got, err := svc.Reservations(context.Background(), filter)
		require.NoError(t, err)
		out := []int64{}
		for _, r := range got {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2, 3}, ids(models.ReservationFilter{}))
	assert.Equal(t, []int64{1, 3}, ids(models.ReservationFilter{Status: models.StatusConfirmed}))
	assert.Equal(t, []int64{2}, ids(models.ReservationFilter{DiningRoomID: 2}))
	assert.Equal(t, []int64{1}, ids(models.ReservationFilter{Search: "BIRTHDAY"}))
	assert.Equal(t, []int64{1, 2}, ids(models.ReservationFilter{Search: "2026-11"}))
	assert.Equal(t, []int64{3}, ids(models.ReservationFilter{DiningRoomID: 1, Search: "holi"}))
	assert.Empty(t, ids(models.ReservationFilter{Status: models.StatusCancelled, DiningRoomID: 1}))
}

func TestAdminService_MemberSearch(t *testing.T) {
	e := newEnv(t)
	e.api.Members = []models.Member{
		{ID: 1, Name: "Ben Stone", Relation: "son"},
		{ID: 2, Name: "Cleo", Relation: "Daughter"},
		{ID: 3, Name: "Dan", Relation: ""},
	}
	svc := newTestAdminSvc(t, e, true)

	all, err := svc.Members(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := svc.Members(context.Background(), "daugh")
	require.NoError(t, err)
	assert.Equal(t, []models.Member{e.api.Members[1]}, got)

	got, err = svc.Members(context.Background(), "STONE")
	require.NoError(t, err)
	assert.Equal(t, []models.Member{e.api.Members[0]}, got)
}

func TestAdminService_UsersAndRules(t *testing.T) {
	e := newEnv(t)
	e.api.Users = []models.User{{ID: 1, Email: "ann@example.com"}, {ID: 2, Email: "bob@example.com"}}
	e.api.Rules = []models.Rule{{ID: 4, Code: "GUEST", FeeType: models.FeePerPerson, BaseAmount: 10, Enabled: true}}
	svc := newTestAdminSvc(t, e, true)

	users, err := svc.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, e.api.Users, users)

	rules, err := svc.Rules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, e.api.Rules, rules)

	amount := 12.0
	rule, err := svc.UpdateRule(context.Background(), 4, models.RuleUpdate{BaseAmount: &amount})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, rule.BaseAmount, 1e-9)
}

// ── writes ──

func TestAdminService_Deletes(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	svc := newTestAdminSvc(t, e, true)

	require.NoError(t, svc.DeleteReservation(ctx, 5))
	require.NoError(t, svc.DeleteMember(ctx, 3))
	assert.Empty(t, e.api.Reservations)
	assert.Empty(t, e.api.Members)

	assert.ErrorIs(t, svc.DeleteMember(ctx, 3), adapter.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteReservation(ctx, 0), ErrInvalidID)
}

func TestAdminService_RoomsGoThroughSynchronizer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seed(e)
	svc := newTestAdminSvc(t, e, true)
	require.Equal(t, StateReady, e.data.Load(ctx))

	e.api.Rooms = append(e.api.Rooms, models.DiningRoom{ID: 3, Name: "Terrace"})
	rooms, err := svc.RefreshRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
	assert.Len(t, e.data.DiningRooms(), 3)

	closed := false
	room, err := svc.UpdateRoom(ctx, 3, models.DiningRoomUpdate{IsActive: &closed})
	require.NoError(t, err)
	assert.False(t, room.IsActive)
	got, _ := e.data.DiningRoom(3)
	assert.Equal(t, *room, got)
}

// ── report ──

func TestAdminService_DownloadDailyReport(t *testing.T) {
	e := newEnv(t)
	svc := newTestAdminSvc(t, e, true)
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := svc.DownloadDailyReport(context.Background(), "2026-11-01", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sterling_daily_report_2026-11-01.pdf"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, e.api.Report, content)
	assert.Equal(t, 1, e.api.Calls(http.MethodGet, "/admin/reports/daily-pdf"))
}

func TestAdminService_DownloadDailyReport_Failures(t *testing.T) {
	e := newEnv(t)
	svc := newTestAdminSvc(t, e, true)

	_, err := svc.DownloadDailyReport(context.Background(), "yesterday", t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidDate)

	e.api.Fail(http.MethodGet, "/admin/reports/daily-pdf", http.StatusInternalServerError, 1, "Failed to generate report")
	dir := t.TempDir()
	_, err = svc.DownloadDailyReport(context.Background(), "2026-11-01", dir)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, ReportFileName("2026-11-01")))
}
