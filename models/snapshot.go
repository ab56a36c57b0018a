package models

// Snapshot is the cached copy of the three primary collections of a session.
type Snapshot struct {
	Rooms        []DiningRoom  `json:"rooms"`
	Reservations []Reservation `json:"reservations"`
	Members      []Member      `json:"members"`

	// WrittenAt is the write time in epoch milliseconds. It is stored under a
	// companion key and is not part of the serialised blob.
	WrittenAt int64 `json:"-"`
}
