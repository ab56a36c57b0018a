package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/client"
	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/service"
	"github.com/MKhiriev/sterling-client/internal/session"
	"github.com/MKhiriev/sterling-client/internal/store"
	"github.com/MKhiriev/sterling-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// routeBuffer bounds queued navigation requests; only the latest matters.
const routeBuffer = 4

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sterling: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("sterling-client", cfg.App.LogFile, cfg.App.LogLevel)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	navigator := session.NewChannelNavigator(routeBuffer)
	sessions := session.NewManager(storages.Credentials, navigator, log.Component("session"))

	requester, err := adapter.NewRequester(cfg.Adapter, sessions, sessions, log.Component("adapter"))
	if err != nil {
		return fmt.Errorf("create api requester: %w", err)
	}
	serverAdapter := adapter.NewHTTPServerAdapter(requester)

	cache := store.NewSnapshotCache(storages.KV, sessions, cfg.Storage.CacheTTL, log.Component("cache"))
	services := service.NewClientServices(serverAdapter, cache, sessions, adapter.ReadPolicy(cfg.Adapter), log)

	ui, err := tui.New(services, storages.Preferences, tui.Options{
		ReportsDir: cfg.App.ReportsDir,
		Routes:     navigator.Routes(),
		BuildInfo:  buildInfo(),
	}, log.Component("tui"))
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log.Component("app"))
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	log.Info().Str("version", buildVersion).Str("api", requester.BaseURL()).Msg("client started")
	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}

func buildInfo() tui.BuildInfo {
	return tui.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
}
