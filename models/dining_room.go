package models

// DiningRoom is a bookable physical space of the club.
type DiningRoom struct {
	// ID is immutable once assigned by the server.
	ID int64 `json:"id"`

	// Name is the display name of the room.
	Name string `json:"name"`

	// Capacity is the seating capacity of the room.
	Capacity int `json:"capacity"`

	// IsActive reports whether the room can currently be booked.
	IsActive bool `json:"is_active"`
}

// DiningRoomUpdate is the partial body of PATCH /admin/dining-rooms/{id}/.
// Nil fields are left unchanged by the server.
type DiningRoomUpdate struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// FindDiningRoom returns the room with the given id. A reservation whose room
// is missing from rooms has no location assigned.
func FindDiningRoom(rooms []DiningRoom, id int64) (DiningRoom, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return DiningRoom{}, false
}
