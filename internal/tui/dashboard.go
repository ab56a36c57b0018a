// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/internal/session"
	"github.com/MKhiriev/sterling-client/models"
)

const defaultStatusTTL = 3 * time.Second

type tab int

const (
	tabReservations tab = iota
	tabMembers
	tabRooms
	tabRules
	tabAdmin
)

func (t tab) title() string {
	switch t {
	case tabReservations:
		return "Reservations"
	case tabMembers:
		return "Members"
	case tabRooms:
		return "Dining rooms"
	case tabRules:
		return "Rules"
	case tabAdmin:
		return "Admin"
	default:
		return "?"
	}
}

// dashboardModel is the main loop. Collections are read from the
// synchroniser on every render; the model only keeps cursors and the
// results of calls the synchroniser does not own (rules, stats, detail).
type dashboardModel struct {
	ctx        context.Context
	services   *service.ClientServices
	prefs      TutorialState
	routes     <-chan string
	reportsDir string
	now        func() time.Time
	copy       func(string) error
	statusTTL  time.Duration

	user   models.User
	tabs   []tab
	active int
	cursor map[tab]int

	rules []models.Rule
	stats *models.AdminStats

	refreshing bool
	spinner    spinner.Model
	status     string
	errMsg     string

	tutorial tutorialModel
	detail   *detailModel
	confirm  *confirmModel

	exit Exit
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, prefs TutorialState, user models.User, opts Options) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	tabs := []tab{tabReservations, tabMembers, tabRooms, tabRules}
	if user.IsAdmin {
		tabs = append(tabs, tabAdmin)
	}

	m := dashboardModel{
		ctx:        ctx,
		services:   services,
		prefs:      prefs,
		routes:     opts.Routes,
		reportsDir: opts.ReportsDir,
		now:        time.Now,
		copy:       clipboard.WriteAll,
		statusTTL:  defaultStatusTTL,
		user:       user,
		tabs:       tabs,
		cursor:     map[tab]int{},
		spinner:    s,
	}
	if prefs != nil && !prefs.TutorialSeen(ctx) {
		m.tutorial.start()
	}
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(waitForRoute(m.ctx, m.routes), m.cmdLoadRules(), m.cmdLoadStats())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routeMsg:
		if msg.route == session.RouteLogin {
			m.exit = ExitSessionExpired
			return m, tea.Quit
		}
		return m, waitForRoute(m.ctx, m.routes)
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = "Refresh failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m.withStatus("Up to date")
	case rulesLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Rules: " + humanizeError(msg.err)
			return m, nil
		}
		m.rules = msg.rules
		return m, nil
	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Stats: " + humanizeError(msg.err)
			return m, nil
		}
		stats := msg.stats
		m.stats = &stats
		return m, nil
	case detailLoadedMsg:
		if m.detail != nil && m.detail.reservationID == msg.reservationID {
			m.detail.apply(msg)
		}
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.closeDetail {
			m.detail = nil
		}
		var clearCmd tea.Cmd
		m, clearCmd = m.withStatus(msg.status)
		if m.detail != nil {
			return m, tea.Batch(clearCmd, m.cmdLoadDetail(m.detail.reservationID))
		}
		return m, clearCmd
	case reportSavedMsg:
		if msg.err != nil {
			m.errMsg = "Report: " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m.withStatus("Report saved to " + msg.path)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		return m.withStatus("Copied to clipboard")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			action := m.confirm.action
			m.confirm = nil
			return m, action
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.tutorial.visible {
		switch {
		case key.Matches(msg, keys.right), key.Matches(msg, keys.enter):
			if m.tutorial.next() {
				return m, m.cmdMarkTutorialSeen()
			}
		case key.Matches(msg, keys.left):
			m.tutorial.prev()
		case key.Matches(msg, keys.esc):
			m.tutorial.visible = false
			return m, m.cmdMarkTutorialSeen()
		case key.Matches(msg, keys.quit):
			m.exit = ExitQuit
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.exit = ExitQuit
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.exit = ExitLogout
		return m, tea.Quit
	case key.Matches(msg, keys.tutorial):
		m.tutorial.start()
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m.startRefresh()
	case key.Matches(msg, keys.report):
		return m.startReport()
	}

	if m.detail != nil {
		return m.updateDetailKeys(msg)
	}

	current := m.tabs[m.active]
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
		m.active = (m.active + 1) % len(m.tabs)
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	case key.Matches(msg, keys.up):
		m.moveCursor(current, -1)
	case key.Matches(msg, keys.down):
		m.moveCursor(current, 1)
	case key.Matches(msg, keys.enter):
		if res, ok := m.selectedReservation(); ok && current == tabReservations {
			m.detail = newDetailModel(res.ID)
			return m, m.cmdLoadDetail(res.ID)
		}
	case key.Matches(msg, keys.delete):
		switch current {
		case tabReservations:
			if res, ok := m.selectedReservation(); ok {
				m.confirm = &confirmModel{
					message: fmt.Sprintf("Cancel reservation #%d on %s?", res.ID, res.Date),
					action:  m.cmdDeleteReservation(res.ID, false),
				}
			}
		case tabMembers:
			if member, ok := m.selectedMember(); ok {
				m.confirm = &confirmModel{
					message: fmt.Sprintf("Remove member %q?", member.Name),
					action:  m.cmdDeleteMember(member.ID),
				}
			}
		}
	case key.Matches(msg, keys.copy):
		if res, ok := m.selectedReservation(); ok && current == tabReservations {
			return m, m.cmdCopy(reservationSummary(res, m.roomName(res.DiningRoomID), nil, nil))
		}
	}

	return m, nil
}

func (m dashboardModel) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
	case key.Matches(msg, keys.up):
		d.idx = clampIndex(d.idx-1, len(d.attendees))
	case key.Matches(msg, keys.down):
		d.idx = clampIndex(d.idx+1, len(d.attendees))
	case key.Matches(msg, keys.remove):
		if a, ok := d.current(); ok && !d.loading {
			return m, m.cmdRemoveAttendee(d.reservationID, a.ID)
		}
	case key.Matches(msg, keys.delete):
		if res, ok := m.services.Data.Reservation(d.reservationID); ok {
			m.confirm = &confirmModel{
				message: fmt.Sprintf("Cancel reservation #%d on %s?", res.ID, res.Date),
				action:  m.cmdDeleteReservation(res.ID, true),
			}
		}
	case key.Matches(msg, keys.copy):
		if res, ok := m.services.Data.Reservation(d.reservationID); ok {
			return m, m.cmdCopy(reservationSummary(res, m.roomName(res.DiningRoomID), d.attendees, d.fees))
		}
	}
	return m, nil
}

func (m dashboardModel) startRefresh() (tea.Model, tea.Cmd) {
	if m.refreshing {
		return m, nil
	}
	m.refreshing = true
	m.errMsg = ""

	cmds := []tea.Cmd{m.spinner.Tick, m.cmdRefresh(), m.cmdLoadRules(), m.cmdLoadStats()}
	if m.detail != nil {
		cmds = append(cmds, m.cmdLoadDetail(m.detail.reservationID))
	}
	return m, tea.Batch(cmds...)
}

func (m dashboardModel) startReport() (tea.Model, tea.Cmd) {
	if !m.user.IsAdmin {
		m.errMsg = "Daily reports are available to admins only"
		return m, nil
	}
	m.errMsg = ""
	m.status = "Downloading report..."
	return m, m.cmdDownloadReport(m.now().Format(time.DateOnly))
}

func (m dashboardModel) withStatus(status string) (dashboardModel, tea.Cmd) {
	m.status = status
	if status == "" {
		return m, nil
	}
	return m, tea.Tick(m.statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) itemCount(t tab) int {
	switch t {
	case tabReservations:
		return len(m.services.Data.Reservations())
	case tabMembers:
		return len(m.services.Data.Members())
	case tabRooms:
		return len(m.services.Data.DiningRooms())
	case tabRules:
		return len(m.rules)
	}
	return 0
}

func (m dashboardModel) moveCursor(t tab, delta int) {
	m.cursor[t] = clampIndex(m.cursor[t]+delta, m.itemCount(t))
}

func (m dashboardModel) selectedReservation() (models.Reservation, bool) {
	list := m.services.Data.Reservations()
	if len(list) == 0 {
		return models.Reservation{}, false
	}
	return list[clampIndex(m.cursor[tabReservations], len(list))], true
}

func (m dashboardModel) selectedMember() (models.Member, bool) {
	list := m.services.Data.Members()
	if len(list) == 0 {
		return models.Member{}, false
	}
	return list[clampIndex(m.cursor[tabMembers], len(list))], true
}

func (m dashboardModel) roomName(id int64) string {
	if room, ok := m.services.Data.DiningRoom(id); ok {
		return room.Name
	}
	return ""
}

// ── commands ──

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx, data := m.ctx, m.services.Data
	return func() tea.Msg {
		return refreshDoneMsg{err: data.Refresh(ctx)}
	}
}

func (m dashboardModel) cmdLoadRules() tea.Cmd {
	ctx, rules := m.ctx, m.services.RulesService
	return func() tea.Msg {
		list, err := rules.Rules(ctx)
		return rulesLoadedMsg{rules: list, err: err}
	}
}

func (m dashboardModel) cmdLoadStats() tea.Cmd {
	if !m.user.IsAdmin {
		return nil
	}
	ctx, admin := m.ctx, m.services.AdminService
	return func() tea.Msg {
		stats, err := admin.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m dashboardModel) cmdLoadDetail(reservationID int64) tea.Cmd {
	ctx, data, rules := m.ctx, m.services.Data, m.services.RulesService
	return func() tea.Msg {
		attendees, err := data.FetchAttendees(ctx, reservationID)
		if err != nil {
			return detailLoadedMsg{reservationID: reservationID, err: err}
		}
		fees, err := rules.ReservationFees(ctx, reservationID)
		return detailLoadedMsg{reservationID: reservationID, attendees: attendees, fees: fees, err: err}
	}
}

func (m dashboardModel) cmdDeleteReservation(id int64, closeDetail bool) tea.Cmd {
	ctx, data := m.ctx, m.services.Data
	return func() tea.Msg {
		if err := data.DeleteReservation(ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Reservation #%d cancelled", id), closeDetail: closeDetail}
	}
}

func (m dashboardModel) cmdDeleteMember(id int64) tea.Cmd {
	ctx, data := m.ctx, m.services.Data
	return func() tea.Msg {
		if err := data.DeleteMember(ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Member removed"}
	}
}

func (m dashboardModel) cmdRemoveAttendee(reservationID, attendeeID int64) tea.Cmd {
	ctx, data := m.ctx, m.services.Data
	return func() tea.Msg {
		if err := data.RemoveAttendee(ctx, reservationID, attendeeID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Attendee removed"}
	}
}

func (m dashboardModel) cmdDownloadReport(date string) tea.Cmd {
	ctx, admin, dir := m.ctx, m.services.AdminService, m.reportsDir
	return func() tea.Msg {
		path, err := admin.DownloadDailyReport(ctx, date, dir)
		return reportSavedMsg{path: path, err: err}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m dashboardModel) cmdMarkTutorialSeen() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	ctx, prefs := m.ctx, m.prefs
	return func() tea.Msg {
		if err := prefs.MarkTutorialSeen(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return nil
	}
}
