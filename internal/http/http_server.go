package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/handlers"
	"gitlab.com/bhajan-roster.net/internal/handlers/share"
	"gitlab.com/bhajan-roster.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	sessionService session.ISessionService
	shareTokens    primary.ShareTokenService
}

func NewServiceProvider(
	sessionService session.ISessionService,
	shareTokens primary.ShareTokenService,
) *ServiceProvider {
	return &ServiceProvider{
		sessionService: sessionService,
		shareTokens:    shareTokens,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.sessionService == nil {
		return errors.New("session service is required")
	}
	r := mux.NewRouter()
	mw := handlers.NewMiddlewareProvider(s.ServiceProvider.shareTokens, s.logger)
	r.Use(mw.RequestLogger)

	handlers.NewMetaHandler(s.ServiceProvider.sessionService, s.logger).RegisterRoutes(r)
	submissions.
		NewSubmissionHandler(s.ServiceProvider.sessionService, s.logger).
		RegisterRoutes(r)
	if s.ServiceProvider.shareTokens != nil {
		share.NewHandler(s.ServiceProvider.sessionService, s.ServiceProvider.shareTokens, mw, s.logger).
			RegisterRoutes(r)
	}
	s.router = r
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Stop is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	if s.srv == nil {
		return errors.New("server not initialised")
	}
	s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
