package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sterling-client/models"
)

const (
	pageMenu   = "menu"
	pageLogin  = "login"
	pageSignup = "signup"
)

// RootModel routes the sign-in pages. It finishes the program once a login
// or signup succeeds, keeping the signed-in user for the caller.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	user       models.User

	buildInfo     BuildInfo
	showBuildInfo bool
}

// NewRootModel registers pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo BuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			return r.finish(msg.User)
		}
	case SignupResult:
		if msg.Err == nil {
			return r.finish(msg.User)
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleGlobalKey consumes the keys shared by every page. While the build
// info window is open it swallows everything else.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.interrupt):
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.version) && r.onMenu():
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.current = next
	r.showBuildInfo = false

	if nav.Payload == nil {
		return r, r.current.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) finish(user models.User) (tea.Model, tea.Cmd) {
	r.user = user
	return r, tea.Quit
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("STERLING", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
