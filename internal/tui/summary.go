package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sterling-client/models"
)

// reservationSummary is the plain-text form copied to the clipboard.
func reservationSummary(r models.Reservation, room string, attendees []models.Attendee, fees []models.Fee) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sterling reservation #%d\n", r.ID)
	fmt.Fprintf(&b, "Room: %s\n", valueOrDash(room))
	fmt.Fprintf(&b, "Date: %s %s\n", r.Date, r.MealType)
	fmt.Fprintf(&b, "Time: %s\n", timeRange(r))
	fmt.Fprintf(&b, "Attendees: %d\n", r.AttendeeCount)
	for _, a := range attendees {
		fmt.Fprintf(&b, "  - %s\n", attendeeLabel(a))
	}
	fmt.Fprintf(&b, "Status: %s\n", r.Status)
	if r.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", r.Notes)
	}
	if len(fees) > 0 {
		fmt.Fprintf(&b, "Fees: %s\n", formatMoney(models.TotalFees(fees)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func timeRange(r models.Reservation) string {
	start, end := shortTime(r.StartTime), shortTime(r.EndTime)
	switch {
	case start == "" && end == "":
		return "-"
	case end == "":
		return start
	}
	return start + "-" + end
}

// shortTime drops the seconds of an HH:MM:SS time.
func shortTime(t string) string {
	if len(t) == len("15:04:05") && strings.Count(t, ":") == 2 {
		return t[:5]
	}
	return t
}

func attendeeLabel(a models.Attendee) string {
	label := valueOrDash(a.Name)
	if a.MemberID == nil {
		label += " (guest)"
	}
	if a.DietaryRestrictions != "" {
		label += " · " + a.DietaryRestrictions
	}
	return label
}
