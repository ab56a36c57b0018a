// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/retrier"
	"github.com/MKhiriev/sterling-client/models"
)

type adminService struct {
	adapter adapter.ServerAdapter
	auth    AuthService
	data    DataSynchronizer
	reads   retrier.Policy
	logger  *logger.Logger
}

// NewAdminService returns the admin surface. Room changes go through data so
// that the synchroniser stays the only owner of the rooms collection.
func NewAdminService(serverAdapter adapter.ServerAdapter, auth AuthService, data DataSynchronizer, reads retrier.Policy, log *logger.Logger) AdminService {
	return &adminService{adapter: serverAdapter, auth: auth, data: data, reads: reads, logger: log}
}

func (a *adminService) guard() error {
	user, ok := a.auth.CurrentUser()
	if !ok || !user.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (a *adminService) Stats(ctx context.Context) (models.AdminStats, error) {
	if err := a.guard(); err != nil {
		return models.AdminStats{}, err
	}

	stats, err := retrier.Value(ctx, a.reads, a.adapter.AdminStats)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.Stats").Msg("error fetching stats")
		return models.AdminStats{}, err
	}
	return stats, nil
}

func (a *adminService) Users(ctx context.Context) ([]models.User, error) {
	if err := a.guard(); err != nil {
		return []models.User{}, err
	}

	users, err := retrier.Value(ctx, a.reads, a.adapter.AdminUsers)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.Users").Msg("error fetching users")
		return []models.User{}, err
	}
	return nonNil(users), nil
}

func (a *adminService) Reservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	if err := a.guard(); err != nil {
		return []models.Reservation{}, err
	}

	all, err := retrier.Value(ctx, a.reads, a.adapter.AdminReservations)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.Reservations").Msg("error fetching reservations")
		return []models.Reservation{}, err
	}
	return filterReservations(all, filter), nil
}

func (a *adminService) Members(ctx context.Context, search string) ([]models.Member, error) {
	if err := a.guard(); err != nil {
		return []models.Member{}, err
	}

	all, err := retrier.Value(ctx, a.reads, a.adapter.AdminMembers)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.Members").Msg("error fetching members")
		return []models.Member{}, err
	}
	return searchMembers(all, search), nil
}

func (a *adminService) Rules(ctx context.Context) ([]models.Rule, error) {
	if err := a.guard(); err != nil {
		return []models.Rule{}, err
	}

	rules, err := retrier.Value(ctx, a.reads, a.adapter.AdminRules)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.Rules").Msg("error fetching rules")
		return []models.Rule{}, err
	}
	return nonNil(rules), nil
}

func (a *adminService) UpdateRule(ctx context.Context, id int64, upd models.RuleUpdate) (*models.Rule, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	rule, err := a.adapter.AdminUpdateRule(ctx, id, upd)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.UpdateRule").Int64("id", id).Msg("error updating rule")
		return nil, err
	}
	return &rule, nil
}

func (a *adminService) DeleteReservation(ctx context.Context, id int64) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	if err := a.adapter.AdminDeleteReservation(ctx, id); err != nil {
		a.logger.Err(err).Str("func", "*adminService.DeleteReservation").Int64("id", id).Msg("error deleting reservation")
		return err
	}
	return nil
}

func (a *adminService) DeleteMember(ctx context.Context, id int64) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	if err := a.adapter.AdminDeleteMember(ctx, id); err != nil {
		a.logger.Err(err).Str("func", "*adminService.DeleteMember").Int64("id", id).Msg("error deleting member")
		return err
	}
	return nil
}

func (a *adminService) RefreshRooms(ctx context.Context) ([]models.DiningRoom, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.data.FetchDiningRooms(ctx)
}

func (a *adminService) UpdateRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (*models.DiningRoom, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.data.UpdateDiningRoom(ctx, id, upd)
}

// ReportFileName is the file name of the daily report of date.
func ReportFileName(date string) string {
	return fmt.Sprintf("sterling_daily_report_%s.pdf", date)
}

func (a *adminService) DownloadDailyReport(ctx context.Context, date, dir string) (string, error) {
	if err := a.guard(); err != nil {
		return "", err
	}
	if err := validateDate(date); err != nil {
		return "", err
	}

	pdf, err := a.adapter.DailyReport(ctx, date)
	if err != nil {
		a.logger.Err(err).Str("func", "*adminService.DownloadDailyReport").Str("date", date).Msg("error downloading report")
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating reports dir: %w", err)
	}

	path := filepath.Join(dir, ReportFileName(date))
	if err = os.WriteFile(path, pdf, 0o644); err != nil {
		a.logger.Err(err).Str("func", "*adminService.DownloadDailyReport").Str("path", path).Msg("error saving report")
		return "", fmt.Errorf("error saving report: %w", err)
	}

	a.logger.Info().Str("func", "*adminService.DownloadDailyReport").Str("path", path).Int("bytes", len(pdf)).Msg("report saved")
	return path, nil
}

func filterReservations(all []models.Reservation, f models.ReservationFilter) []models.Reservation {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.DiningRoomID != 0 && r.DiningRoomID != f.DiningRoomID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Notes), search) && !strings.Contains(r.Date, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func searchMembers(all []models.Member, search string) []models.Member {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Member, 0, len(all))
	for _, m := range all {
		if search == "" ||
			strings.Contains(strings.ToLower(m.Name), search) ||
			strings.Contains(strings.ToLower(m.Relation), search) {
			out = append(out, m)
		}
	}
	return out
}
