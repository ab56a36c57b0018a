package apitest

import (
	"net/http"

	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/MKhiriev/sterling-client/models"
)

func reservationID(r models.Reservation) int64 { return r.ID }
func memberID(m models.Member) int64           { return m.ID }

// ── users ──

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Email != s.User.Email || req.Password != DefaultPassword {
		utils.WriteDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	_, _ = utils.WriteJSON(w, models.TokenResponse{AccessToken: s.token, TokenType: "bearer", User: s.User}, http.StatusOK)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Email == s.User.Email {
		utils.WriteDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	s.User = models.User{ID: s.newID(), Email: req.Email, Name: req.Name}
	_, _ = utils.WriteJSON(w, s.User, http.StatusCreated)
}

func (s *Server) me(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = utils.WriteJSON(w, s.User, http.StatusOK)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Users)
}

// ── rooms ──

func (s *Server) listRooms(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Rooms)
}

func (s *Server) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	var upd models.DiningRoomUpdate
	if !ok || !decodeBody(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Rooms, id, func(r models.DiningRoom) int64 { return r.ID })
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Dining room not found")
		return
	}
	room := s.Rooms[i]
	if upd.Name != nil {
		room.Name = *upd.Name
	}
	if upd.Capacity != nil {
		room.Capacity = *upd.Capacity
	}
	if upd.IsActive != nil {
		room.IsActive = *upd.IsActive
	}
	s.Rooms[i] = room
	_, _ = utils.WriteJSON(w, room, http.StatusOK)
}

// ── reservations ──

func (s *Server) listReservations(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Reservations)
}

func (s *Server) getReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Reservations, id, reservationID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Reservation not found")
		return
	}
	_, _ = utils.WriteJSON(w, s.Reservations[i], http.StatusOK)
}

func (s *Server) createReservation(w http.ResponseWriter, r *http.Request) {
	var req models.NewReservation
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.Reservation{
		ID:           s.newID(),
		DiningRoomID: req.DiningRoomID,
		Date:         req.Date,
		MealType:     req.MealType,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
		Status:       models.StatusConfirmed,
	}
	s.Reservations = append(s.Reservations, res)
	_, _ = utils.WriteJSON(w, res, http.StatusCreated)
}

func (s *Server) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var upd models.ReservationUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Reservations, id, reservationID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Reservation not found")
		return
	}
	res := s.Reservations[i]
	if upd.DiningRoomID != nil {
		res.DiningRoomID = *upd.DiningRoomID
	}
	if upd.Date != nil {
		res.Date = *upd.Date
	}
	if upd.MealType != nil {
		res.MealType = *upd.MealType
	}
	if upd.StartTime != nil {
		res.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		res.EndTime = *upd.EndTime
	}
	if upd.Notes != nil {
		res.Notes = *upd.Notes
	}
	if upd.Status != nil {
		res.Status = *upd.Status
	}
	s.Reservations[i] = res
	_, _ = utils.WriteJSON(w, res, http.StatusOK)
}

func (s *Server) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Reservations, id, reservationID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Reservation not found")
		return
	}
	s.Reservations = append(s.Reservations[:i:i], s.Reservations[i+1:]...)
	delete(s.Attendees, id)
	w.WriteHeader(http.StatusNoContent)
}

// ── attendees and fees ──

func (s *Server) listAttendees(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Attendees[id])
}

func (s *Server) addAttendee(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var req models.NewAttendee
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Reservations, id, reservationID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Reservation not found")
		return
	}
	a := models.Attendee{
		ID:                  s.newID(),
		ReservationID:       id,
		MemberID:            req.MemberID,
		Name:                req.Name,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	s.Attendees[id] = append(s.Attendees[id], a)
	s.Reservations[i].AttendeeCount++
	_, _ = utils.WriteJSON(w, a, http.StatusCreated)
}

// removeAttendee succeeds for unknown attendees, the way an idempotent
// DELETE answers a stale client.
func (s *Server) removeAttendee(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	aid, _ := pathID(r, "aid")

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.Attendees[id]
	if j := indexByID(list, aid, func(a models.Attendee) int64 { return a.ID }); j >= 0 {
		s.Attendees[id] = append(list[:j:j], list[j+1:]...)
		if i := indexByID(s.Reservations, id, reservationID); i >= 0 && s.Reservations[i].AttendeeCount > 0 {
			s.Reservations[i].AttendeeCount--
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listFees(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Fees[id])
}

// ── members ──

func (s *Server) listMembers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Members)
}

func (s *Server) createMember(w http.ResponseWriter, r *http.Request) {
	var req models.NewMember
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.Member{
		ID:                  s.newID(),
		UserID:              s.User.ID,
		Name:                req.Name,
		Relation:            req.Relation,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	s.Members = append(s.Members, m)
	_, _ = utils.WriteJSON(w, m, http.StatusCreated)
}

func (s *Server) updateMember(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var upd models.MemberUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Members, id, memberID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Member not found")
		return
	}
	m := s.Members[i]
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Relation != nil {
		m.Relation = *upd.Relation
	}
	if upd.DietaryRestrictions != nil {
		m.DietaryRestrictions = *upd.DietaryRestrictions
	}
	s.Members[i] = m
	_, _ = utils.WriteJSON(w, m, http.StatusOK)
}

func (s *Server) deleteMember(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Members, id, memberID)
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Member not found")
		return
	}
	s.Members = append(s.Members[:i:i], s.Members[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

// ── rules and admin ──

func (s *Server) listRules(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, s.Rules)
}

func (s *Server) updateRule(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var upd models.RuleUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.Rules, id, func(r models.Rule) int64 { return r.ID })
	if i < 0 {
		utils.WriteDetail(w, http.StatusNotFound, "Rule not found")
		return
	}
	rule := s.Rules[i]
	if upd.BaseAmount != nil {
		rule.BaseAmount = *upd.BaseAmount
	}
	if upd.Threshold != nil {
		rule.Threshold = upd.Threshold
	}
	if upd.Enabled != nil {
		rule.Enabled = *upd.Enabled
	}
	s.Rules[i] = rule
	_, _ = utils.WriteJSON(w, rule, http.StatusOK)
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = utils.WriteJSON(w, s.Stats, http.StatusOK)
}

func (s *Server) dailyReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("date") == "" {
		utils.WriteDetail(w, http.StatusUnprocessableEntity, []models.ValidationError{
			{Loc: []any{"query", "date"}, Msg: "field required", Type: "missing"},
		})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(s.Report)
}
