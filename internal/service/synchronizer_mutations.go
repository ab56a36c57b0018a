package service

import (
	"context"

	"github.com/MKhiriev/sterling-client/internal/retrier"
	"github.com/MKhiriev/sterling-client/models"
)

// ── reservations ──

func (s *dataSynchronizer) FetchReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	res, err := retrier.Value(ctx, s.reads, func(ctx context.Context) (models.Reservation, error) {
		return s.adapter.Reservation(ctx, id)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.FetchReservation").Int64("id", id).Msg("error fetching reservation")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = upsert(s.reservations, res, sameReservation(res.ID))
	s.writeCache(ctx)
	return &res, nil
}

func (s *dataSynchronizer) CreateReservation(ctx context.Context, req models.NewReservation) (*models.Reservation, error) {
	if err := validateNewReservation(req); err != nil {
		return nil, err
	}

	res, err := s.adapter.CreateReservation(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.CreateReservation").Msg("error creating reservation")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(cloneGrow(s.reservations), res)
	s.writeCache(ctx)
	return &res, nil
}

func (s *dataSynchronizer) UpdateReservation(ctx context.Context, id int64, upd models.ReservationUpdate) (*models.Reservation, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateReservationUpdate(upd); err != nil {
		return nil, err
	}

	res, err := s.adapter.UpdateReservation(ctx, id, upd)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.UpdateReservation").Int64("id", id).Msg("error updating reservation")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = replace(s.reservations, res, sameReservation(id))
	s.writeCache(ctx)
	return &res, nil
}

func (s *dataSynchronizer) DeleteReservation(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.adapter.DeleteReservation(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.DeleteReservation").Int64("id", id).Msg("error deleting reservation")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = without(s.reservations, sameReservation(id))
	s.writeCache(ctx)
	return nil
}

// ── attendees ──

func (s *dataSynchronizer) FetchAttendees(ctx context.Context, reservationID int64) ([]models.Attendee, error) {
	if err := validateID(reservationID); err != nil {
		return []models.Attendee{}, err
	}

	attendees, err := retrier.Value(ctx, s.reads, func(ctx context.Context) ([]models.Attendee, error) {
		return s.adapter.Attendees(ctx, reservationID)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.FetchAttendees").Int64("reservation_id", reservationID).Msg("error fetching attendees")
		return []models.Attendee{}, err
	}
	return nonNil(attendees), nil
}

func (s *dataSynchronizer) AddAttendee(ctx context.Context, reservationID int64, req models.NewAttendee) (*models.Attendee, error) {
	if err := validateID(reservationID); err != nil {
		return nil, err
	}
	if err := validateNewAttendee(req); err != nil {
		return nil, err
	}

	attendee, err := s.adapter.AddAttendee(ctx, reservationID, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.AddAttendee").Int64("reservation_id", reservationID).Msg("error adding attendee")
		return nil, err
	}

	s.adjustAttendeeCount(ctx, reservationID, +1)
	return &attendee, nil
}

func (s *dataSynchronizer) RemoveAttendee(ctx context.Context, reservationID, attendeeID int64) error {
	if err := validateID(reservationID); err != nil {
		return err
	}
	if err := validateID(attendeeID); err != nil {
		return err
	}

	if err := s.adapter.RemoveAttendee(ctx, reservationID, attendeeID); err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.RemoveAttendee").
			Int64("reservation_id", reservationID).Int64("attendee_id", attendeeID).Msg("error removing attendee")
		return err
	}

	s.adjustAttendeeCount(ctx, reservationID, -1)
	return nil
}

// adjustAttendeeCount applies a confirmed add or remove to the denormalised
// counter, never going below zero. The next full reload replaces the value
// with the server's count.
func (s *dataSynchronizer) adjustAttendeeCount(ctx context.Context, reservationID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		if r.ID == reservationID {
			r.AttendeeCount = max(0, r.AttendeeCount+delta)
		}
		next[i] = r
	}
	s.reservations = next
	s.writeCache(ctx)
}

// ── members ──

func (s *dataSynchronizer) CreateMember(ctx context.Context, req models.NewMember) (*models.Member, error) {
	if err := validateNewMember(req); err != nil {
		return nil, err
	}

	member, err := s.adapter.CreateMember(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.CreateMember").Msg("error creating member")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(cloneGrow(s.members), member)
	s.writeCache(ctx)
	return &member, nil
}

func (s *dataSynchronizer) UpdateMember(ctx context.Context, id int64, upd models.MemberUpdate) (*models.Member, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	member, err := s.adapter.UpdateMember(ctx, id, upd)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.UpdateMember").Int64("id", id).Msg("error updating member")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = replace(s.members, member, sameMember(id))
	s.writeCache(ctx)
	return &member, nil
}

func (s *dataSynchronizer) DeleteMember(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.adapter.DeleteMember(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.DeleteMember").Int64("id", id).Msg("error deleting member")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = without(s.members, sameMember(id))
	s.writeCache(ctx)
	return nil
}

// ── dining rooms ──

func (s *dataSynchronizer) FetchDiningRooms(ctx context.Context) ([]models.DiningRoom, error) {
	rooms, err := retrier.Value(ctx, s.reads, s.adapter.DiningRooms)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.FetchDiningRooms").Msg("error fetching dining rooms")
		return nil, err
	}
	rooms = nonNil(rooms)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = rooms
	s.writeCache(ctx)
	return cloneGrow(rooms), nil
}

func (s *dataSynchronizer) UpdateDiningRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (*models.DiningRoom, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	room, err := s.adapter.UpdateDiningRoom(ctx, id, upd)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.UpdateDiningRoom").Int64("id", id).Msg("error updating dining room")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = replace(s.rooms, room, func(r models.DiningRoom) bool { return r.ID == id })
	s.writeCache(ctx)
	return &room, nil
}

// ── slice helpers ──
// Collections are never modified in place: a copy handed out by an accessor
// must not observe later mutations.

func sameReservation(id int64) func(models.Reservation) bool {
	return func(r models.Reservation) bool { return r.ID == id }
}

func sameMember(id int64) func(models.Member) bool {
	return func(m models.Member) bool { return m.ID == id }
}

// upsert returns a new slice with the elements matching same replaced by
// item, or with item appended when nothing matches.
func upsert[T any](items []T, item T, same func(T) bool) []T {
	out := make([]T, 0, len(items)+1)
	found := false
	for _, it := range items {
		if same(it) {
			out = append(out, item)
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		out = append(out, item)
	}
	return out
}

// replace returns a new slice with the elements matching same swapped for
// item. An update for an entry that is not held locally changes nothing.
func replace[T any](items []T, item T, same func(T) bool) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if same(it) {
			it = item
		}
		out[i] = it
	}
	return out
}

// without returns a new slice without the elements matching drop.
func without[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out
}

// cloneGrow copies items into a new slice with room for one more element.
func cloneGrow[T any](items []T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return out
}
