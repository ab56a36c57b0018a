package models

// MealType is the kind of sitting a reservation is made for.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealEvent     MealType = "event"
)

// Valid reports whether m is one of the meal types accepted by the API.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealEvent:
		return true
	default:
		return false
	}
}

// ReservationStatus is the lifecycle status of a reservation.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Reservation is a booking of a dining room for one sitting.
//
// AttendeeCount is a denormalised copy of the number of attendee rows held by
// the server. The client adjusts it by +1/-1 after a confirmed add/remove so
// that lists do not need a full reload; the value may drift until the next
// full reload, which always replaces it with the server's count.
type Reservation struct {
	ID            int64             `json:"id"`
	DiningRoomID  int64             `json:"dining_room_id"`
	Date          string            `json:"date"`
	MealType      MealType          `json:"meal_type"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
	Notes         string            `json:"notes"`
	AttendeeCount int               `json:"attendee_count"`
	Status        ReservationStatus `json:"status"`
}

// NewReservation is the body of POST /reservations/.
type NewReservation struct {
	DiningRoomID int64    `json:"dining_room_id"`
	Date         string   `json:"date"`
	MealType     MealType `json:"meal_type"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Notes        string   `json:"notes,omitempty"`
}

// ReservationUpdate is the partial body of PATCH /reservations/{id}/.
type ReservationUpdate struct {
	DiningRoomID *int64             `json:"dining_room_id,omitempty"`
	Date         *string            `json:"date,omitempty"`
	MealType     *MealType          `json:"meal_type,omitempty"`
	StartTime    *string            `json:"start_time,omitempty"`
	EndTime      *string            `json:"end_time,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	Status       *ReservationStatus `json:"status,omitempty"`
}

// ReservationDraft is an unsent reservation form kept between sessions.
type ReservationDraft struct {
	DiningRoomID int64    `json:"dining_room_id,omitempty"`
	Date         string   `json:"date,omitempty"`
	MealType     MealType `json:"meal_type,omitempty"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// ReservationFilter narrows the admin reservation list.
type ReservationFilter struct {
	// Status keeps only reservations with this status. Empty means any.
	Status ReservationStatus

	// DiningRoomID keeps only reservations of this room. Zero means any.
	DiningRoomID int64

	// Search is matched case-insensitively against notes and date.
	Search string
}
