package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/internal/tui"
	"github.com/MKhiriev/sterling-client/internal/workers"
)

// Notices shown on the login menu.
const (
	NoticeSignedOut      = "You have been signed out"
	NoticeSessionExpired = "Your session expired, please sign in again"
)

var ErrNoUI = errors.New("client: ui is required")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, tui.ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.Scheduled(services.ReconcileJob, cfg.ReconcileInterval)),
		logger:   log,
	}, nil
}

// Run implements [Client]. It returns nil when the user quits.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	var notice string

	user, err := a.services.AuthService.RestoreSession(ctx)
	signedIn := err == nil
	if err != nil {
		notice = restoreNotice(err)
		a.logger.Info().Err(err).Str("func", "*App.run").Msg("no session to restore")
	}

	for {
		if !signedIn {
			user, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		state := a.services.Data.Load(ctx)
		a.logger.Info().Str("func", "*App.run").Int64("user_id", user.ID).Stringer("state", state).Msg("data loaded")

		a.workers.Start(ctx)
		exit, err := a.ui.MainLoop(ctx, user)
		a.workers.Stop()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch exit {
		case tui.ExitLogout:
			notice = NoticeSignedOut
		case tui.ExitSessionExpired:
			notice = NoticeSessionExpired
		default:
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.run").Msg("error clearing session")
		}
		a.services.Data.Reset()
		signedIn = false
	}
}

func restoreNotice(err error) string {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return ""
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, adapter.ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return NoticeSessionExpired
	}
	return "Could not restore your session: " + adapter.UserMessage(err)
}
