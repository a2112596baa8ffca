// Package httpapi exposes the NoteKeeper REST surface over echo:
// auth endpoints (signup, login, logout, check_session) and the
// session-gated notes endpoints (list, create).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address    string
	cookieName string
	auth       *services.AuthService
	notes      *services.NoteService
	logger     logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, as *services.AuthService, ns *services.NoteService, cookieName string) (*HTTPServer, error) {
	return &HTTPServer{
		address:    address,
		cookieName: cookieName,
		auth:       as,
		notes:      ns,
		logger:     l.With("module", "http_server"),
	}, nil
}

func (s *HTTPServer) registerRoutes(e *echo.Echo) {
	e.POST("/signup", s.signup)
	e.POST("/login", s.login)
	e.DELETE("/logout", s.logout)
	e.GET("/check_session", s.checkSession)

	notes := e.Group("/notes", s.requireSession)
	notes.GET("", s.notesIndex)
	notes.POST("", s.notesCreate)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	s.registerRoutes(e)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLogger writes one structured line per handled request.
func (s *HTTPServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info(c.Request().Context(), "request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start).String(),
		)
		return err
	}
}
