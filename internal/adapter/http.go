package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/MKhiriev/sterling-client/models"
)

type httpServerAdapter struct {
	r *Requester
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] on top of r.
func NewHTTPServerAdapter(r *Requester) ServerAdapter {
	return &httpServerAdapter{r: r}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// item builds a trailing-slash item route such as "/members/3/".
func item(collection string, id int64, rest ...string) string {
	path := fmt.Sprintf("/%s/%d/", collection, id)
	for _, seg := range rest {
		path += strings.Trim(seg, "/") + "/"
	}
	return path
}

func getList[T any](ctx context.Context, r *Requester, path string) ([]T, error) {
	var raw json.RawMessage
	if err := r.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return utils.DecodeObjects[T](raw), nil
}

// ── users ──

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := h.r.Post(ctx, "/users/login", req, &resp, Anonymous()); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if strings.TrimSpace(resp.AccessToken) == "" {
		return models.TokenResponse{}, fmt.Errorf("login request: %w: empty access token", ErrDecode)
	}
	return resp, nil
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var user models.User
	if err := h.r.Post(ctx, "/users/", req, &user, Anonymous()); err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.r.Get(ctx, "/users/me", &user); err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	return user, nil
}

// ── dining rooms ──

func (h *httpServerAdapter) DiningRooms(ctx context.Context) ([]models.DiningRoom, error) {
	rooms, err := getList[models.DiningRoom](ctx, h.r, "/dining-rooms/")
	if err != nil {
		return nil, fmt.Errorf("dining rooms request: %w", err)
	}
	return rooms, nil
}

func (h *httpServerAdapter) UpdateDiningRoom(ctx context.Context, id int64, upd models.DiningRoomUpdate) (models.DiningRoom, error) {
	var room models.DiningRoom
	if err := h.r.Patch(ctx, item("admin/dining-rooms", id), upd, &room); err != nil {
		return models.DiningRoom{}, fmt.Errorf("update dining room request: %w", err)
	}
	return room, nil
}

// ── reservations ──

func (h *httpServerAdapter) Reservations(ctx context.Context) ([]models.Reservation, error) {
	res, err := getList[models.Reservation](ctx, h.r, "/reservations/")
	if err != nil {
		return nil, fmt.Errorf("reservations request: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) Reservation(ctx context.Context, id int64) (models.Reservation, error) {
	var res models.Reservation
	if err := h.r.Get(ctx, item("reservations", id), &res); err != nil {
		return models.Reservation{}, fmt.Errorf("reservation request: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) CreateReservation(ctx context.Context, req models.NewReservation) (models.Reservation, error) {
	var res models.Reservation
	if err := h.r.Post(ctx, "/reservations/", req, &res); err != nil {
		return models.Reservation{}, fmt.Errorf("create reservation request: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) UpdateReservation(ctx context.Context, id int64, upd models.ReservationUpdate) (models.Reservation, error) {
	var res models.Reservation
	if err := h.r.Patch(ctx, item("reservations", id), upd, &res); err != nil {
		return models.Reservation{}, fmt.Errorf("update reservation request: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) DeleteReservation(ctx context.Context, id int64) error {
	if err := h.r.Delete(ctx, item("reservations", id), nil); err != nil {
		return fmt.Errorf("delete reservation request: %w", err)
	}
	return nil
}

// ── attendees ──

func (h *httpServerAdapter) Attendees(ctx context.Context, reservationID int64) ([]models.Attendee, error) {
	attendees, err := getList[models.Attendee](ctx, h.r, item("reservations", reservationID, "attendees"))
	if err != nil {
		return nil, fmt.Errorf("attendees request: %w", err)
	}
	return attendees, nil
}

func (h *httpServerAdapter) AddAttendee(ctx context.Context, reservationID int64, req models.NewAttendee) (models.Attendee, error) {
	var attendee models.Attendee
	if err := h.r.Post(ctx, item("reservations", reservationID, "attendees"), req, &attendee); err != nil {
		return models.Attendee{}, fmt.Errorf("add attendee request: %w", err)
	}
	return attendee, nil
}

func (h *httpServerAdapter) RemoveAttendee(ctx context.Context, reservationID, attendeeID int64) error {
	path := item("reservations", reservationID, "attendees", fmt.Sprint(attendeeID))
	if err := h.r.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("remove attendee request: %w", err)
	}
	return nil
}

// ── members ──

func (h *httpServerAdapter) Members(ctx context.Context) ([]models.Member, error) {
	members, err := getList[models.Member](ctx, h.r, "/members/")
	if err != nil {
		return nil, fmt.Errorf("members request: %w", err)
	}
	return members, nil
}

func (h *httpServerAdapter) CreateMember(ctx context.Context, req models.NewMember) (models.Member, error) {
	var member models.Member
	if err := h.r.Post(ctx, "/members/", req, &member); err != nil {
		return models.Member{}, fmt.Errorf("create member request: %w", err)
	}
	return member, nil
}

func (h *httpServerAdapter) UpdateMember(ctx context.Context, id int64, upd models.MemberUpdate) (models.Member, error) {
	var member models.Member
	if err := h.r.Patch(ctx, item("members", id), upd, &member); err != nil {
		return models.Member{}, fmt.Errorf("update member request: %w", err)
	}
	return member, nil
}

func (h *httpServerAdapter) DeleteMember(ctx context.Context, id int64) error {
	if err := h.r.Delete(ctx, item("members", id), nil); err != nil {
		return fmt.Errorf("delete member request: %w", err)
	}
	return nil
}

// ── rules and fees ──

func (h *httpServerAdapter) Rules(ctx context.Context) ([]models.Rule, error) {
	rules, err := getList[models.Rule](ctx, h.r, "/rules/")
	if err != nil {
		return nil, fmt.Errorf("rules request: %w", err)
	}
	return rules, nil
}

func (h *httpServerAdapter) ReservationFees(ctx context.Context, reservationID int64) ([]models.Fee, error) {
	fees, err := getList[models.Fee](ctx, h.r, item("reservations", reservationID, "fees"))
	if err != nil {
		return nil, fmt.Errorf("reservation fees request: %w", err)
	}
	return fees, nil
}

// ── admin ──

func (h *httpServerAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	if err := h.r.Get(ctx, "/admin/stats/", &stats); err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats request: %w", err)
	}
	return stats, nil
}

func (h *httpServerAdapter) AdminUsers(ctx context.Context) ([]models.User, error) {
	users, err := getList[models.User](ctx, h.r, "/admin/users/")
	if err != nil {
		return nil, fmt.Errorf("admin users request: %w", err)
	}
	return users, nil
}

func (h *httpServerAdapter) AdminReservations(ctx context.Context) ([]models.Reservation, error) {
	res, err := getList[models.Reservation](ctx, h.r, "/admin/reservations/")
	if err != nil {
		return nil, fmt.Errorf("admin reservations request: %w", err)
	}
	return res, nil
}

func (h *httpServerAdapter) AdminMembers(ctx context.Context) ([]models.Member, error) {
	members, err := getList[models.Member](ctx, h.r, "/admin/members/")
	if err != nil {
		return nil, fmt.Errorf("admin members request: %w", err)
	}
	return members, nil
}

func (h *httpServerAdapter) AdminRules(ctx context.Context) ([]models.Rule, error) {
	rules, err := getList[models.Rule](ctx, h.r, "/admin/rules/")
	if err != nil {
		return nil, fmt.Errorf("admin rules request: %w", err)
	}
	return rules, nil
}

func (h *httpServerAdapter) AdminUpdateRule(ctx context.Context, id int64, upd models.RuleUpdate) (models.Rule, error) {
	var rule models.Rule
	if err := h.r.Patch(ctx, item("admin/rules", id), upd, &rule); err != nil {
		return models.Rule{}, fmt.Errorf("admin update rule request: %w", err)
	}
	return rule, nil
}

func (h *httpServerAdapter) AdminDeleteReservation(ctx context.Context, id int64) error {
	if err := h.r.Delete(ctx, item("admin/reservations", id), nil); err != nil {
		return fmt.Errorf("admin delete reservation request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) AdminDeleteMember(ctx context.Context, id int64) error {
	if err := h.r.Delete(ctx, item("admin/members", id), nil); err != nil {
		return fmt.Errorf("admin delete member request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) DailyReport(ctx context.Context, date string) ([]byte, error) {
	pdf, err := h.r.Download(ctx, "/admin/reports/daily-pdf",
		WithQuery("date", date),
		WithHeader("Accept", "application/pdf"))
	if err != nil {
		return nil, fmt.Errorf("daily report request: %w", err)
	}
	return pdf, nil
}
