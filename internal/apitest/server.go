package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/utils"
	"github.com/MKhiriev/sterling-client/models"
)

// Default fixtures of a new Server.
const (
	DefaultToken    = "test-token"
	DefaultEmail    = "ann@example.com"
	DefaultPassword = "secret"
)

// Always makes a scheduled failure permanent.
const Always = -1

type failure struct {
	status int
	detail any
	times  int
}

// Server is a fake Sterling API. Exported collections may be changed between
// calls while holding no lock; handlers read them under the server lock, so
// tests must not modify them concurrently with requests.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	token  string
	nextID int64

	User         models.User
	Users        []models.User
	Rooms        []models.DiningRoom
	Reservations []models.Reservation
	Members      []models.Member
	Attendees    map[int64][]models.Attendee
	Rules        []models.Rule
	Fees         map[int64][]models.Fee
	Stats        models.AdminStats
	Report       []byte

	calls    map[string]int
	failures map[string]failure

	logger *logger.Logger
}

// NewServer starts a Server that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		token:     DefaultToken,
		nextID:    1000,
		User:      models.User{ID: 1, Email: DefaultEmail, Name: "Ann"},
		Attendees: map[int64][]models.Attendee{},
		Fees:      map[int64][]models.Fee{},
		Report:    []byte("%PDF-1.4 test report"),
		calls:     map[string]int{},
		failures:  map[string]failure{},
		logger:    logger.Nop(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(s.withCallLog)

	r.Post("/users/login", s.login)
	r.Post("/users/", s.signup)

	r.Group(func(r chi.Router) {
		r.Use(s.withAuth)

		r.Get("/users/me", s.me)

		r.Get("/dining-rooms/", s.listRooms)
		r.Get("/reservations/", s.listReservations)
		r.Post("/reservations/", s.createReservation)
		r.Get("/reservations/{id}/", s.getReservation)
		r.Patch("/reservations/{id}/", s.updateReservation)
		r.Delete("/reservations/{id}/", s.deleteReservation)
		r.Get("/reservations/{id}/attendees/", s.listAttendees)
		r.Post("/reservations/{id}/attendees/", s.addAttendee)
		r.Delete("/reservations/{id}/attendees/{aid}/", s.removeAttendee)
		r.Get("/reservations/{id}/fees/", s.listFees)

		r.Get("/members/", s.listMembers)
		r.Post("/members/", s.createMember)
		r.Patch("/members/{id}/", s.updateMember)
		r.Delete("/members/{id}/", s.deleteMember)

		r.Get("/rules/", s.listRules)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.withAdmin)
			r.Get("/stats/", s.stats)
			r.Get("/users/", s.listUsers)
			r.Get("/reservations/", s.listReservations)
			r.Delete("/reservations/{id}/", s.deleteReservation)
			r.Get("/members/", s.listMembers)
			r.Delete("/members/{id}/", s.deleteMember)
			r.Get("/rules/", s.listRules)
			r.Patch("/rules/{id}/", s.updateRule)
			r.Patch("/dining-rooms/{id}/", s.updateRoom)
			r.Get("/reports/daily-pdf", s.dailyReport)
		})
	})

	return r
}

// Token returns the token the server accepts.
func (s *Server) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken changes the accepted token; earlier tokens get 401.
func (s *Server) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Fail answers the next times calls of "method path" with status and a
// {"detail": ...} body. times of [Always] fails every call.
func (s *Server) Fail(method, path string, status, times int, detail any) {
	if detail == nil {
		detail = http.StatusText(status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, detail: detail, times: times}
}

// Calls returns how many times "method path" was requested.
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

// TotalCalls returns the number of requests served.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		utils.WriteDetail(w, http.StatusUnprocessableEntity, []models.ValidationError{
			{Loc: []any{"body"}, Msg: "invalid JSON body", Type: "value_error"},
		})
		return false
	}
	return true
}

func (s *Server) withAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		admin := s.User.IsAdmin
		s.mu.Unlock()
		if !admin {
			utils.WriteDetail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func indexByID[T any](items []T, id int64, idOf func(T) int64) int {
	return slices.IndexFunc(items, func(it T) bool { return idOf(it) == id })
}
