// Package tui implements the terminal interface of the Sterling client on
// top of bubbletea.
//
// The UI runs as two programs: LoginFlow until a user is signed in, then
// MainLoop until the user quits, logs out or the session expires.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/models"
)

var (
	ErrUserQuit   = errors.New("user quit")
	ErrNoServices = errors.New("tui: services are required")
)

// Exit tells the runtime why MainLoop returned.
type Exit int

const (
	ExitQuit Exit = iota
	ExitLogout
	ExitSessionExpired
)

// TutorialState persists whether the first-run hint was dismissed.
type TutorialState interface {
	TutorialSeen(ctx context.Context) bool
	MarkTutorialSeen(ctx context.Context) error
}

// Options configures a TUI.
type Options struct {
	// ReportsDir receives downloaded daily reports.
	ReportsDir string
	// Routes carries navigation requests of the session manager.
	Routes    <-chan string
	BuildInfo BuildInfo
}

type TUI struct {
	services *service.ClientServices
	prefs    TutorialState
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, prefs TutorialState, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, prefs: prefs, opts: opts, logger: log}, nil
}

// LoginFlow runs the sign-in screens. notice, when set, is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(notice),
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageSignup: NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.opts.BuildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}
	return result.user, nil
}

// MainLoop runs the dashboard of user.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (Exit, error) {
	// routes queued before sign-in belong to the previous session
	drainRoutes(t.opts.Routes)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newDashboardModel(ctx, t.services, t.prefs, user, t.opts)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return ExitQuit, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return ExitQuit, tea.ErrProgramKilled
	}
	t.logger.Debug().Str("func", "*TUI.MainLoop").Int("exit", int(result.exit)).Msg("main loop finished")
	return result.exit, nil
}

func drainRoutes(routes <-chan string) {
	if routes == nil {
		return
	}
	for {
		select {
		case <-routes:
		default:
			return
		}
	}
}

// waitForRoute delivers the next navigation request as a routeMsg.
func waitForRoute(ctx context.Context, routes <-chan string) tea.Cmd {
	if routes == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case route, ok := <-routes:
			if !ok {
				return nil
			}
			return routeMsg{route: route}
		}
	}
}
