package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sterling-client/models"
)

// detailModel is the open reservation: its attendees and fees are fetched
// when the view opens, the reservation itself is read from the synchroniser.
type detailModel struct {
	reservationID int64
	loading       bool
	attendees     []models.Attendee
	fees          []models.Fee
	idx           int
	err           error
}

func newDetailModel(reservationID int64) *detailModel {
	return &detailModel{reservationID: reservationID, loading: true}
}

func (m *detailModel) current() (models.Attendee, bool) {
	if m.idx < 0 || m.idx >= len(m.attendees) {
		return models.Attendee{}, false
	}
	return m.attendees[m.idx], true
}

func (m *detailModel) apply(msg detailLoadedMsg) {
	m.loading = false
	m.err = msg.err
	if msg.err != nil {
		return
	}
	m.attendees = msg.attendees
	m.fees = msg.fees
	m.idx = clampIndex(m.idx, len(m.attendees))
}

func (m *detailModel) View(res models.Reservation, found bool, room string) string {
	if !found {
		return renderPage("RESERVATION", "Reservation not found", "esc: back")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Room       : %s\n", valueOrDash(room))
	fmt.Fprintf(&b, "Date       : %s (%s)\n", res.Date, res.MealType)
	fmt.Fprintf(&b, "Time       : %s\n", timeRange(res))
	fmt.Fprintf(&b, "Status     : %s\n", res.Status)
	fmt.Fprintf(&b, "Notes      : %s\n", valueOrDash(res.Notes))
	fmt.Fprintf(&b, "Attendees  : %d\n\n", res.AttendeeCount)

	switch {
	case m.loading:
		b.WriteString("Loading attendees...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.err)))
		b.WriteString("\n")
	default:
		if len(m.attendees) == 0 {
			b.WriteString("No attendees\n")
		}
		for i, a := range m.attendees {
			fmt.Fprintf(&b, "%s %s\n", cursorMark(i == m.idx), attendeeLabel(a))
		}

		b.WriteString("\n")
		if len(m.fees) == 0 {
			b.WriteString("Fees       : none\n")
		} else {
			for _, f := range m.fees {
				fmt.Fprintf(&b, "  %-24s %s\n", fitText(valueOrDash(f.Rule.Name), 24), formatMoney(f.CalculatedAmount))
			}
			fmt.Fprintf(&b, "Total fees : %s\n", formatMoney(models.TotalFees(m.fees)))
		}
	}

	title := fmt.Sprintf("RESERVATION #%d", res.ID)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "↑/↓: attendee │ x: remove attendee │ d: cancel reservation │ y: copy │ r: reload │ esc: back")
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
