// Package server initializes and runs the ProfileKeeper server.
// It builds the profile directory, seeds it, starts the gRPC API and the
// HTTP preview gateway, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/profilekeeper/internal/logging"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	"github.com/dmitrijs2005/profilekeeper/internal/server/config"
	"github.com/dmitrijs2005/profilekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/profilekeeper/internal/server/services"

	gs "github.com/dmitrijs2005/profilekeeper/internal/server/grpc"
	hs "github.com/dmitrijs2005/profilekeeper/internal/server/http"
)

// logOutput is where the server writes its JSON log.
var logOutput io.Writer = os.Stdout

type App struct {
	config         *config.Config
	logger         logging.Logger
	profileService *services.ProfileService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	repo := profiles.NewMemoryRepository()
	ps := services.NewProfileService(repo, c)

	return &App{config: c, logger: logger, profileService: ps}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) seed(ctx context.Context) error {
	if !app.config.SeedSample {
		return nil
	}

	inserted, err := app.profileService.Seed(ctx)
	if err != nil {
		return err
	}
	if inserted {
		app.logger.Info(ctx, "Sample profile seeded", "username", profile.SampleUsername)
	}
	return nil
}

func (app *App) startGRPCServer(ctx context.Context) error {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.profileService)

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context) error {

	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.profileService, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails. A server failure stops the others and is returned.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	if err := app.seed(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	start := func(run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx); err != nil {
				app.logger.Error(ctx, err.Error())
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	start(app.startGRPCServer)

	if app.config.EndpointAddrHTTP != "" {
		start(app.startHTTPServer)
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(errs...)
}
