// Package server wires the development backend together: in-memory
// storage, the user and itinerary services and the HTTP API, with graceful
// shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dmitrijs2005/wandergenie/internal/buildinfo"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
	"github.com/dmitrijs2005/wandergenie/internal/server/config"
	"github.com/dmitrijs2005/wandergenie/internal/server/httpapi"
	"github.com/dmitrijs2005/wandergenie/internal/server/itineraries"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

// Version is reported by /health unless a build version was linked in.
const Version = "1.0.0"

func reportedVersion() string {
	if v := buildinfo.Version(); v != "N/A" {
		return v
	}
	return Version
}

type App struct {
	config *config.Config
	logger logging.Logger
	zap    *zap.Logger
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zl, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger := logging.NewZapLogger(zl)

	us := users.NewService(users.NewInMemoryRepository(), c)
	is := itineraries.NewService(itineraries.NewInMemoryRepository(), itineraries.PlaceholderGenerator{})

	srv := httpapi.NewServer(c.EndpointAddr, logger, zl.Named("access"), us, is,
		httpapi.Info{Version: reportedVersion(), Database: c.DatabaseName})

	return &App{config: c, logger: logger, zap: zl, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer func() { _ = app.zap.Sync() }()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()
	wg.Wait()

	app.logger.Info(ctx, "App stopped")
	return runErr
}
