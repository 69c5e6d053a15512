// Package server exposes the wayfinding engine to the mobile UI over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/config"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

const shutdownTimeout = 10 * time.Second

// Server wires the room index, leg cache and trip sessions to HTTP routes.
type Server struct {
	cfg      config.AppConfig
	index    *catalog.RoomIndex
	legs     *wayfinding.LegCache
	sessions *SessionStore
	logger   *zap.Logger
	started  time.Time
}

func New(cfg config.AppConfig, idx *catalog.RoomIndex, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		index:    idx,
		legs:     wayfinding.NewLegCache(wayfinding.NewPlanner(idx), cfg.Navigation.LegCacheSize),
		sessions: NewSessionStore(cfg.Server.SessionTTL, cfg.Server.MaxSessions),
		logger:   logger,
		started:  time.Now(),
	}
}

// Sessions exposes the trip store so callers can run its sweeper.
func (s *Server) Sessions() *SessionStore { return s.sessions }

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/rooms", s.handleRooms)
	r.Get("/api/buildings", s.handleBuildings)
	r.Get("/api/route", s.handleRoute)
	r.Route("/api/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Get("/{tripID}", s.handleGetTrip)
		r.Post("/{tripID}/next", s.handleStep(DirNext))
		r.Post("/{tripID}/previous", s.handleStep(DirPrevious))
		r.Delete("/{tripID}", s.handleDeleteTrip)
	})
	return r
}

// Run listens on the configured port until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Server.Port))
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln and shuts down gracefully when ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown error", zap.Error(err))
		return err
	}
	<-errc
	s.logger.Info("server shut down successfully")
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
