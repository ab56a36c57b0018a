package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sterling-client/models"
)

// NavigateTo switches the login flow to Page and, when set, delivers Payload
// to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page.
type LoginResult struct {
	User models.User
	Err  error
}

// SignupResult is produced by the signup page.
type SignupResult struct {
	User models.User
	Err  error
}

type routeMsg struct {
	route string
}

type refreshDoneMsg struct {
	err error
}

type rulesLoadedMsg struct {
	rules []models.Rule
	err   error
}

type statsLoadedMsg struct {
	stats models.AdminStats
	err   error
}

type detailLoadedMsg struct {
	reservationID int64
	attendees     []models.Attendee
	fees          []models.Fee
	err           error
}

// actionDoneMsg reports a mutation started from the dashboard.
type actionDoneMsg struct {
	status      string
	err         error
	closeDetail bool
}

type reportSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
