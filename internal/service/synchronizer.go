// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/retrier"
	"github.com/MKhiriev/sterling-client/models"
)

type dataSynchronizer struct {
	adapter     adapter.ServerAdapter
	cache       SnapshotCache
	credentials CredentialSource
	reads       retrier.Policy
	logger      *logger.Logger

	mu           sync.RWMutex
	state        State
	rooms        []models.DiningRoom
	reservations []models.Reservation
	members      []models.Member
}

// NewDataSynchronizer returns a synchroniser in [StateUninitialized]. reads
// is the retry policy of fetches; writes are never retried.
func NewDataSynchronizer(serverAdapter adapter.ServerAdapter, cache SnapshotCache, credentials CredentialSource, reads retrier.Policy, log *logger.Logger) DataSynchronizer {
	return &dataSynchronizer{
		adapter:      serverAdapter,
		cache:        cache,
		credentials:  credentials,
		reads:        reads,
		logger:       log,
		rooms:        []models.DiningRoom{},
		reservations: []models.Reservation{},
		members:      []models.Member{},
	}
}

func (s *dataSynchronizer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *dataSynchronizer) Loading() bool {
	return s.State() == StateLoading
}

func (s *dataSynchronizer) Load(ctx context.Context) State {
	// a 401 during the fetch clears the credential, so keep the token the
	// snapshot was keyed by
	token := s.credentials.Token(ctx)
	if token == "" {
		s.adopt(nil, nil, nil, StateEmpty)
		return StateEmpty
	}

	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	if snap, ok := s.cache.Read(ctx); ok {
		s.logger.Debug().Str("func", "*dataSynchronizer.Load").Msg("serving cached snapshot")
		s.adopt(snap.Rooms, snap.Reservations, snap.Members, StateReady)
		return StateReady
	}

	rooms, reservations, members, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.Load").Msg("initial load failed")
		s.cache.ClearFor(ctx, token)
		s.adopt(nil, nil, nil, StateEmpty)
		return StateEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms, s.reservations, s.members = rooms, reservations, members
	s.state = StateReady
	s.writeCache(ctx)
	return StateReady
}

func (s *dataSynchronizer) Refresh(ctx context.Context) error {
	if s.credentials.Token(ctx) == "" {
		return ErrNoSession
	}

	rooms, reservations, members, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataSynchronizer.Refresh").Msg("refresh failed")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// server attendee counts replace any local adjustment
	s.rooms, s.reservations, s.members = rooms, reservations, members
	s.state = StateReady
	s.writeCache(ctx)
	return nil
}

func (s *dataSynchronizer) Reset() {
	s.adopt(nil, nil, nil, StateUninitialized)
}

// fetchAll runs the three retried reads concurrently and fails as soon as one
// of them does.
func (s *dataSynchronizer) fetchAll(ctx context.Context) ([]models.DiningRoom, []models.Reservation, []models.Member, error) {
	var (
		rooms        []models.DiningRoom
		reservations []models.Reservation
		members      []models.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = retrier.Value(gctx, s.reads, s.adapter.DiningRooms)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = retrier.Value(gctx, s.reads, s.adapter.Reservations)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = retrier.Value(gctx, s.reads, s.adapter.Members)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return nonNil(rooms), nonNil(reservations), nonNil(members), nil
}

func (s *dataSynchronizer) adopt(rooms []models.DiningRoom, reservations []models.Reservation, members []models.Member, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = nonNil(rooms)
	s.reservations = nonNil(reservations)
	s.members = nonNil(members)
	s.state = state
}

// writeCache must be called with mu held.
func (s *dataSynchronizer) writeCache(ctx context.Context) {
	s.cache.Write(ctx, s.rooms, s.reservations, s.members)
}

func (s *dataSynchronizer) DiningRooms() []models.DiningRoom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rooms)
}

func (s *dataSynchronizer) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reservations)
}

func (s *dataSynchronizer) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

func (s *dataSynchronizer) Reservation(id int64) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.reservations, func(r models.Reservation) bool { return r.ID == id })
	if i < 0 {
		return models.Reservation{}, false
	}
	return s.reservations[i], true
}

func (s *dataSynchronizer) DiningRoom(id int64) (models.DiningRoom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FindDiningRoom(s.rooms, id)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
