// Package http serves a read-only JSON view of the profile directory for
// preview screens. Writes go through the gRPC API only.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/logging"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// ProfileReader is the part of the profile service the gateway needs.
type ProfileReader interface {
	Sample(ctx context.Context) (*profile.Profile, error)
	Get(ctx context.Context, id string) (*profile.Profile, error)
	Lookup(ctx context.Context, username string) (*profile.Profile, error)
	Search(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error)
}

type HTTPServer struct {
	address         string
	app             *fiber.App
	profiles        ProfileReader
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, pr ProfileReader, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		profiles:        pr,
		shutdownTimeout: shutdownTimeout,
	}

	app := fiber.New(fiber.Config{
		AppName:               "profilekeeper",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	app.Use(cors.New())
	app.Get("/healthz", HealthCheckHandler)

	api := app.Group("/api")
	// Registered before :id, so a stored profile with the id "sample" is only
	// reachable over gRPC.
	api.Get("/profiles/sample", s.getSampleProfile)
	api.Get("/profiles/:id", s.getProfile)
	api.Get("/profiles", s.findProfiles)

	s.app = app
	return s
}

// App exposes the fiber application, mainly for app.Test in tests.
func (s *HTTPServer) App() *fiber.App { return s.app }

// Run listens until ctx is cancelled, then shuts down within the configured timeout.
// The listener is bound before serving so that a shutdown always has something to close.
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	if ctx.Err() != nil {
		return ln.Close()
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)
	// Serve may not have registered the listener yet, closing it unblocks Accept.
	_ = ln.Close()

	if err := <-errCh; err != nil {
		return err
	}
	return shutdownErr
}

// errorHandler renders every error as {"error": "..."} with a matching status.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.Is(err, common.ErrorNotFound):
		code, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorInvalidArgument):
		code, msg = fiber.StatusBadRequest, err.Error()
	default:
		s.logger.Error(c.UserContext(), err.Error(), "path", c.Path())
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
