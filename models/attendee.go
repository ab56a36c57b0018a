package models

// Attendee is a member or guest seated at a reservation. Attendees are fetched
// per reservation on demand and are not part of the long-lived client state.
type Attendee struct {
	ID                  int64  `json:"id"`
	ReservationID       int64  `json:"reservation_id"`
	MemberID            *int64 `json:"member_id"`
	Name                string `json:"name"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// IsGuest reports whether the attendee is not on the member roster.
func (a Attendee) IsGuest() bool {
	return a.MemberID == nil
}

// NewAttendee is the body of POST /reservations/{id}/attendees/. Either
// MemberID is set (a roster member) or Name describes a guest.
type NewAttendee struct {
	MemberID            *int64 `json:"member_id,omitempty"`
	Name                string `json:"name,omitempty"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
}
