package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sterling-client/internal/mock"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/internal/session"
	"github.com/MKhiriev/sterling-client/models"
)

type fakeTutorial struct {
	seen   bool
	marked int
}

func (f *fakeTutorial) TutorialSeen(context.Context) bool { return f.seen }

func (f *fakeTutorial) MarkTutorialSeen(context.Context) error {
	f.marked++
	f.seen = true
	return nil
}

type dashFixture struct {
	data  *mock.MockDataSynchronizer
	rules *mock.MockRulesService
	admin *mock.MockAdminService
	prefs *fakeTutorial
	copy  []string
}

var testReservation = models.Reservation{
	ID: 5, DiningRoomID: 1, Date: "2026-11-01", MealType: models.MealDinner,
	StartTime: "18:00:00", EndTime: "20:00:00", AttendeeCount: 2, Status: models.StatusConfirmed,
}

func newDashFixture(t *testing.T) *dashFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &dashFixture{
		data:  mock.NewMockDataSynchronizer(ctrl),
		rules: mock.NewMockRulesService(ctrl),
		admin: mock.NewMockAdminService(ctrl),
		prefs: &fakeTutorial{seen: true},
	}
}

func (f *dashFixture) model(user models.User) dashboardModel {
	services := &service.ClientServices{Data: f.data, RulesService: f.rules, AdminService: f.admin}
	m := newDashboardModel(context.Background(), services, f.prefs, user, Options{ReportsDir: "/tmp/reports"})
	m.now = func() time.Time { return time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC) }
	m.copy = func(s string) error {
		f.copy = append(f.copy, s)
		return nil
	}
	m.statusTTL = time.Millisecond
	return m
}

// allowReads lets the views query the synchroniser freely.
func (f *dashFixture) allowReads() {
	f.data.EXPECT().Reservations().Return([]models.Reservation{testReservation}).AnyTimes()
	f.data.EXPECT().Members().Return([]models.Member{{ID: 3, Name: "Ben", Relation: "son"}}).AnyTimes()
	f.data.EXPECT().DiningRooms().Return([]models.DiningRoom{{ID: 1, Name: "Oak", Capacity: 12, IsActive: true}}).AnyTimes()
	f.data.EXPECT().DiningRoom(int64(1)).Return(models.DiningRoom{ID: 1, Name: "Oak"}, true).AnyTimes()
	f.data.EXPECT().Reservation(int64(5)).Return(testReservation, true).AnyTimes()
	f.data.EXPECT().Loading().Return(false).AnyTimes()
	f.data.EXPECT().State().Return(service.StateReady).AnyTimes()
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and returns the produced messages, flattening batches.
// Spinner ticks are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// send delivers msg and every message its commands produce, breadth first.
func send(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, []tea.Msg) {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 && len(seen) < 50 {
		next, cmd := m.Update(queue[0])
		queue = queue[1:]
		var ok bool
		m, ok = next.(dashboardModel)
		require.True(t, ok)
		for _, produced := range run(cmd) {
			seen = append(seen, produced)
			if _, quit := produced.(tea.QuitMsg); !quit {
				queue = append(queue, produced)
			}
		}
	}
	return m, seen
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// ── exit ──

func TestDashboard_Exit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want Exit
	}{
		{name: "quit", msg: keyPress("q"), want: ExitQuit},
		{name: "logout", msg: keyPress("l"), want: ExitLogout},
		{name: "session expired", msg: routeMsg{route: session.RouteLogin}, want: ExitSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashFixture(t)
			m, msgs := send(t, f.model(models.User{ID: 1}), tt.msg)

			assert.Equal(t, tt.want, m.exit)
			assert.True(t, hasQuit(msgs))
		})
	}
}

func TestDashboard_OtherRoutesKeepRunning(t *testing.T) {
	f := newDashFixture(t)
	m := f.model(models.User{ID: 1})

	next, cmd := m.Update(routeMsg{route: session.RouteHome})

	assert.Nil(t, cmd)
	assert.Equal(t, ExitQuit, next.(dashboardModel).exit)
}

// ── refresh ──

func TestDashboard_Refresh(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().Refresh(gomock.Any()).Return(nil)
	f.rules.EXPECT().Rules(gomock.Any()).Return([]models.Rule{{ID: 1, Code: "LATE"}}, nil)
	f.admin.EXPECT().Stats(gomock.Any()).Return(models.AdminStats{TotalUsers: 3}, nil)

	m, _ := send(t, f.model(models.User{ID: 1, IsAdmin: true}), keyPress("r"))

	assert.False(t, m.refreshing)
	assert.Empty(t, m.errMsg)
	assert.Len(t, m.rules, 1)
	require.NotNil(t, m.stats)
	assert.Equal(t, 3, m.stats.TotalUsers)
}

func TestDashboard_RefreshFailureKeepsData(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().Refresh(gomock.Any()).Return(errors.New("boom"))
	f.rules.EXPECT().Rules(gomock.Any()).Return([]models.Rule{}, nil)

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("r"))

	assert.False(t, m.refreshing)
	assert.Equal(t, "Refresh failed: boom", m.errMsg)
	assert.Contains(t, m.View(), "2026-11-01")
}

// ── delete with confirmation ──

func TestDashboard_DeleteReservation_Confirmed(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().DeleteReservation(gomock.Any(), int64(5)).Return(nil)

	m, msgs := send(t, f.model(models.User{ID: 1}), keyPress("d"))
	require.NotNil(t, m.confirm)
	assert.Empty(t, msgs)
	assert.Contains(t, m.View(), "Cancel reservation #5")

	m, _ = send(t, m, keyPress("y"))

	assert.Nil(t, m.confirm)
	assert.Empty(t, m.errMsg)
}

func TestDashboard_DeleteReservation_Declined(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("d"))
	m, _ = send(t, m, keyPress("n"))

	assert.Nil(t, m.confirm)
}

func TestDashboard_DeleteMember(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().DeleteMember(gomock.Any(), int64(3)).Return(nil)

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("tab"))
	require.Equal(t, tabMembers, m.tabs[m.active])
	m, _ = send(t, m, keyPress("d"))
	require.NotNil(t, m.confirm)
	m, _ = send(t, m, keyPress("y"))

	assert.Empty(t, m.errMsg)
}

// ── detail ──

func TestDashboard_DetailRemoveAttendee(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	memberID := int64(3)
	attendees := []models.Attendee{
		{ID: 7, ReservationID: 5, MemberID: &memberID, Name: "Ben"},
		{ID: 8, ReservationID: 5, Name: "Guest Gail"},
	}
	fees := []models.Fee{{ID: 1, ReservationID: 5, Rule: models.Rule{Name: "Large party"}, CalculatedAmount: 40}}
	gomock.InOrder(
		f.data.EXPECT().FetchAttendees(gomock.Any(), int64(5)).Return(attendees, nil),
		f.rules.EXPECT().ReservationFees(gomock.Any(), int64(5)).Return(fees, nil),
		f.data.EXPECT().RemoveAttendee(gomock.Any(), int64(5), int64(8)).Return(nil),
		f.data.EXPECT().FetchAttendees(gomock.Any(), int64(5)).Return(attendees[:1], nil),
		f.rules.EXPECT().ReservationFees(gomock.Any(), int64(5)).Return(fees, nil),
	)

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("enter"))
	require.NotNil(t, m.detail)
	assert.Len(t, m.detail.attendees, 2)
	view := m.View()
	assert.Contains(t, view, "Guest Gail (guest)")
	assert.Contains(t, view, "Total fees : $40.00")

	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("x"))

	require.NotNil(t, m.detail)
	assert.Len(t, m.detail.attendees, 1)
	assert.Zero(t, m.detail.idx)
}

func TestDashboard_DetailCopyAndClose(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().FetchAttendees(gomock.Any(), int64(5)).Return([]models.Attendee{{ID: 8, Name: "Gail"}}, nil)
	f.rules.EXPECT().ReservationFees(gomock.Any(), int64(5)).Return([]models.Fee{}, nil)

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("enter"))
	m, _ = send(t, m, keyPress("y"))

	require.Len(t, f.copy, 1)
	assert.Contains(t, f.copy[0], "Sterling reservation #5")
	assert.Contains(t, f.copy[0], "  - Gail (guest)")

	m, _ = send(t, m, keyPress("esc"))
	assert.Nil(t, m.detail)
}

func TestDashboard_DetailFetchError(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.data.EXPECT().FetchAttendees(gomock.Any(), int64(5)).Return([]models.Attendee{}, errors.New("offline"))

	m, _ := send(t, f.model(models.User{ID: 1}), keyPress("enter"))

	require.NotNil(t, m.detail)
	assert.False(t, m.detail.loading)
	assert.Contains(t, m.View(), "Error: offline")
}

// ── report ──

func TestDashboard_Report(t *testing.T) {
	f := newDashFixture(t)
	f.allowReads()
	f.admin.EXPECT().
		DownloadDailyReport(gomock.Any(), "2026-11-02", "/tmp/reports").
		Return("/tmp/reports/sterling_daily_report_2026-11-02.pdf", nil)

	m, _ := send(t, f.model(models.User{ID: 1, IsAdmin: true}), keyPress("p"))

	assert.Empty(t, m.errMsg)
}

func TestDashboard_ReportRequiresAdmin(t *testing.T) {
	f := newDashFixture(t)

	m, msgs := send(t, f.model(models.User{ID: 1}), keyPress("p"))

	assert.Empty(t, msgs)
	assert.Equal(t, "Daily reports are available to admins only", m.errMsg)
}

// ── tabs and tutorial ──

func TestDashboard_AdminTabOnlyForAdmins(t *testing.T) {
	f := newDashFixture(t)

	assert.NotContains(t, f.model(models.User{ID: 1}).tabs, tabAdmin)
	assert.Contains(t, f.model(models.User{ID: 1, IsAdmin: true}).tabs, tabAdmin)
}

func TestDashboard_TabsWrapAround(t *testing.T) {
	f := newDashFixture(t)
	m := f.model(models.User{ID: 1})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, tabRules, m.tabs[m.active])
}

func TestDashboard_Tutorial(t *testing.T) {
	f := newDashFixture(t)
	f.prefs.seen = false

	m := f.model(models.User{ID: 1})
	require.True(t, m.tutorial.visible)

	for range len(tutorialSteps) - 1 {
		m, _ = send(t, m, keyPress("enter"))
	}
	assert.True(t, m.tutorial.visible)
	assert.Zero(t, f.prefs.marked)

	m, _ = send(t, m, keyPress("enter"))
	assert.False(t, m.tutorial.visible)
	assert.Equal(t, 1, f.prefs.marked)

	m, _ = send(t, m, keyPress("?"))
	assert.True(t, m.tutorial.visible)
	m, _ = send(t, m, keyPress("esc"))
	assert.False(t, m.tutorial.visible)
	assert.Equal(t, 2, f.prefs.marked)
}

func TestDashboard_TutorialHiddenWhenSeen(t *testing.T) {
	f := newDashFixture(t)
	assert.False(t, f.model(models.User{ID: 1}).tutorial.visible)
}
