package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/models"
)

func (m dashboardModel) View() string {
	var body string
	if m.detail != nil {
		res, found := m.services.Data.Reservation(m.detail.reservationID)
		body = m.detail.View(res, found, m.roomName(res.DiningRoomID))
		if line := m.statusLine(); line != "" {
			body += "\n\n" + line
		}
	} else {
		body = renderPage(m.header(), m.viewTab(), m.hotKeys())
	}

	if m.confirm != nil {
		body += "\n\n" + m.confirm.View()
	}
	if m.tutorial.visible {
		body += "\n\n" + m.tutorial.View()
	}
	return appStyle.Render(body)
}

func (m dashboardModel) header() string {
	h := "STERLING │ " + valueOrDash(m.user.Name)
	if m.user.IsAdmin {
		h += " (admin)"
	}
	if m.refreshing {
		h += "  " + m.spinner.View()
	}
	return h
}

func (m dashboardModel) hotKeys() string {
	keys := "tab: next tab │ ↑/↓: move │ enter: open │ d: delete │ y: copy │ r: refresh"
	if m.user.IsAdmin {
		keys += " │ p: report"
	}
	return keys + " │ ?: help │ l: logout │ q: quit"
}

func (m dashboardModel) statusLine() string {
	switch {
	case m.errMsg != "":
		return errorStyle.Render("Error: " + m.errMsg)
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

func (m dashboardModel) viewTab() string {
	var b strings.Builder

	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			titles[i] = activeTabStyle.Render(t.title())
		} else {
			titles[i] = tabStyle.Render(t.title())
		}
	}
	b.WriteString(strings.Join(titles, " "))
	b.WriteString("\n\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	data := m.services.Data
	current := m.tabs[m.active]
	if current != tabRules && current != tabAdmin {
		switch {
		case data.Loading():
			b.WriteString("Loading...\n")
			return b.String()
		case data.State() == service.StateEmpty:
			b.WriteString("Nothing loaded yet. Press r to retry.\n")
			return b.String()
		}
	}

	switch current {
	case tabReservations:
		b.WriteString(m.viewReservations(data.Reservations()))
	case tabMembers:
		b.WriteString(m.viewMembers(data.Members()))
	case tabRooms:
		b.WriteString(m.viewRooms(data.DiningRooms()))
	case tabRules:
		b.WriteString(m.viewRules())
	case tabAdmin:
		b.WriteString(m.viewAdmin())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) viewReservations(list []models.Reservation) string {
	if len(list) == 0 {
		return "No reservations\n"
	}

	idx := clampIndex(m.cursor[tabReservations], len(list))
	var b strings.Builder
	b.WriteString("  ID    │ Date        │ Meal       │ Time         │ Room             │ Ppl │ Status\n")
	b.WriteString("────────┼─────────────┼────────────┼──────────────┼──────────────────┼─────┼──────────\n")
	for i, r := range list {
		fmt.Fprintf(&b, "%s %-5d │ %-11s │ %-10s │ %-12s │ %-16s │ %3d │ %s\n",
			cursorMark(i == idx),
			r.ID,
			r.Date,
			r.MealType,
			timeRange(r),
			fitText(valueOrDash(m.roomName(r.DiningRoomID)), 16),
			r.AttendeeCount,
			r.Status,
		)
	}
	return b.String()
}

func (m dashboardModel) viewMembers(list []models.Member) string {
	if len(list) == 0 {
		return "No members\n"
	}

	idx := clampIndex(m.cursor[tabMembers], len(list))
	var b strings.Builder
	b.WriteString("  Name                   │ Relation     │ Dietary\n")
	b.WriteString("─────────────────────────┼──────────────┼────────────────────\n")
	for i, member := range list {
		fmt.Fprintf(&b, "%s %-22s │ %-12s │ %s\n",
			cursorMark(i == idx),
			fitText(member.Name, 22),
			fitText(valueOrDash(member.Relation), 12),
			valueOrDash(member.DietaryRestrictions),
		)
	}
	return b.String()
}

func (m dashboardModel) viewRooms(list []models.DiningRoom) string {
	if len(list) == 0 {
		return "No dining rooms\n"
	}

	idx := clampIndex(m.cursor[tabRooms], len(list))
	var b strings.Builder
	b.WriteString("  Room                   │ Capacity │ Open\n")
	b.WriteString("─────────────────────────┼──────────┼──────\n")
	for i, room := range list {
		open := "yes"
		if !room.IsActive {
			open = "no"
		}
		fmt.Fprintf(&b, "%s %-22s │ %8d │ %s\n", cursorMark(i == idx), fitText(room.Name, 22), room.Capacity, open)
	}
	return b.String()
}

func (m dashboardModel) viewRules() string {
	if len(m.rules) == 0 {
		return "No rules\n"
	}

	idx := clampIndex(m.cursor[tabRules], len(m.rules))
	var b strings.Builder
	b.WriteString("  Code        │ Rule                     │ Amount            │ Enabled\n")
	b.WriteString("──────────────┼──────────────────────────┼───────────────────┼─────────\n")
	for i, r := range m.rules {
		enabled := "yes"
		if !r.Enabled {
			enabled = "no"
		}
		fmt.Fprintf(&b, "%s %-11s │ %-24s │ %-17s │ %s\n",
			cursorMark(i == idx),
			fitText(r.Code, 11),
			fitText(r.Name, 24),
			ruleAmount(r),
			enabled,
		)
	}
	return b.String()
}

func (m dashboardModel) viewAdmin() string {
	if m.stats == nil {
		return "Loading statistics...\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Users         : %d\n", m.stats.TotalUsers)
	fmt.Fprintf(&b, "Reservations  : %d\n", m.stats.TotalReservations)
	fmt.Fprintf(&b, "Members       : %d\n", m.stats.TotalMembers)
	fmt.Fprintf(&b, "Revenue       : %s\n\n", formatMoney(m.stats.TotalRevenue))
	b.WriteString(helpStyle.Render("p downloads today's report to " + valueOrDash(m.reportsDir)))
	return b.String()
}

func ruleAmount(r models.Rule) string {
	switch r.FeeType {
	case models.FeePercentage:
		return fmt.Sprintf("%g%%", r.BaseAmount)
	case models.FeePerPerson:
		return formatMoney(r.BaseAmount) + " / person"
	default:
		return formatMoney(r.BaseAmount)
	}
}
