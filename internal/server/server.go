// Package server exposes the generator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Addr     string
	Version  string
	MaxRows  int
	Defaults schema.Defaults
	Logger   *slog.Logger
}

type Server struct {
	router  *chi.Mux
	opts    Options
	log     *slog.Logger
	metrics *metrics
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = 100000
	}
	if opts.Defaults.Rows <= 0 {
		opts.Defaults.Rows = 100
	}
	if opts.Defaults.Format == "" {
		opts.Defaults.Format = types.FormatJSON
	}
	if opts.Defaults.TableName == "" {
		opts.Defaults.TableName = export.DefaultTableName
	}

	s := &Server{
		router:  chi.NewRouter(),
		opts:    opts,
		log:     opts.Logger,
		metrics: newMetrics(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "X-Row-Count"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{name}", s.handleGetPreset)
		r.Get("/patterns", s.handlePatterns)
		r.Get("/types", s.handleTypes)
		r.Post("/generate", s.handleGenerate)
		r.Post("/preview", s.handlePreview)
	})
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server listening", "addr", s.opts.Addr, "max_rows", s.opts.MaxRows)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

// instrument records request duration under the matched route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
		s.log.Debug("request", "method", r.Method, "route", route, "status", status,
			"duration", elapsed, "request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, reason string, err error) {
	s.metrics.failures.WithLabelValues(reason).Inc()
	render.Status(r, status)
	render.JSON(w, r, Response{Success: false, Message: err.Error()})
}
