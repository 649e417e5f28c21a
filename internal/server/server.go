// If you are AI: This file implements the HTTP server lifecycle and routing.
// The HTTP server and the editor loop run under one errgroup and stop together.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"gsteditor/internal/config"
	"gsteditor/internal/core/bus"
	"gsteditor/internal/editor"
	"gsteditor/internal/svc/api"
	"gsteditor/internal/svc/events"
	"gsteditor/internal/svc/health"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// Server wraps the HTTP server and the editor loop it serves.
type Server struct {
	httpServer *http.Server
	loop       *editor.Loop
	log        zerolog.Logger
}

// New creates a new server instance with the given configuration.
// The server is not started until Run is called.
func New(cfg *config.Config, loop *editor.Loop, hub *bus.Hub, log zerolog.Logger) *Server {
	mux := http.NewServeMux()

	health.New(loop).RegisterRoutes(mux)
	api.NewService(loop, cfg.Editor.DocumentsDir).RegisterRoutes(mux)
	events.NewHandler(hub, cfg.Editor.EventBuffer, log).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Bind, strconv.Itoa(cfg.Server.HTTPPort)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		loop:       loop,
		log:        log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the editor loop and the HTTP server on ln until ctx is cancelled
// or either fails, then shuts both down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	// Request contexts end with the group so event feeds close on shutdown.
	s.httpServer.BaseContext = func(net.Listener) context.Context { return gctx }

	g.Go(func() error {
		return s.loop.Run(gctx)
	})
	g.Go(func() error {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		s.log.Info().Msg("http server stopped")
		return nil
	})

	return g.Wait()
}
