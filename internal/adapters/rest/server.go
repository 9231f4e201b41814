package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"greeter/internal/ports/input"
)

type (
	Server struct {
		router     *mux.Router
		greetings  input.GreetingUseCase
		logger     *zap.Logger
		serverName string
		version    string
	}

	// Options carries the fixed identifiers reported in responses.
	Options struct {
		ServerName string
		Version    string
	}
)

func NewServer(greetings input.GreetingUseCase, logger *zap.Logger, opts Options) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		greetings:  greetings,
		logger:     logger,
		serverName: opts.ServerName,
		version:    opts.Version,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestID, s.accessLog)

	s.router.HandleFunc("/", s.greet).Methods(http.MethodGet)
	s.router.HandleFunc("/greet", s.greet).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/languages", s.languages).Methods(http.MethodGet)
	s.router.HandleFunc("/languages/{code}", s.language).Methods(http.MethodGet)
	s.router.HandleFunc("/api-docs", s.apiDocs).Methods(http.MethodGet)

	// mux skips Use middleware when no route matches.
	s.router.NotFoundHandler = requestID(s.accessLog(http.HandlerFunc(s.notFound)))
	s.router.MethodNotAllowedHandler = requestID(s.accessLog(http.HandlerFunc(s.methodNotAllowed)))
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting", zap.String("address", "http://"+addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
