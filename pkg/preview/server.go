package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/tooltip/pkg/document"
	"github.com/vango-dev/tooltip/pkg/mount"
	"github.com/vango-dev/tooltip/pkg/snapshot"
	"github.com/vango-dev/tooltip/pkg/telemetry"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

// Options configures a Server.
type Options struct {
	// Content is the tooltip to serve. Default: a new tooltip.Content.
	Content *tooltip.Content

	// Registry receives the server's metrics and backs /metrics.
	// Default: a fresh registry.
	Registry *prometheus.Registry

	// Snapshots stores published snapshots. POST /snapshot answers 503
	// when it is nil.
	Snapshots snapshot.Store

	// History is the number of frames kept for reconnecting clients.
	History int

	// CheckOrigin validates WebSocket origins. Default: SameOriginCheck.
	CheckOrigin func(*http.Request) bool

	Logger *slog.Logger
}

// Server is the preview HTTP server. It is safe for concurrent use.
type Server struct {
	mu        sync.Mutex
	content   *tooltip.Content
	container *mount.Container
	recorder  *telemetry.Recorder
	hub       *hub
	snapshots snapshot.Store
	router    chi.Router
	logger    *slog.Logger

	unsubscribe func()
}

// New creates a server and renders the initial content.
func New(opts Options) *Server {
	if opts.Content == nil {
		opts.Content = tooltip.NewContent()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "preview")

	s := &Server{
		content:   opts.Content,
		container: mount.NewContainer(mount.Options{IncludeHIDs: true}),
		recorder:  telemetry.New(telemetry.WithRegistry(opts.Registry)),
		snapshots: opts.Snapshots,
		logger:    logger,
	}
	s.hub = newHub(s.container, mount.NewHistory(opts.History), s.recorder, opts.CheckOrigin, logger)
	s.unsubscribe = s.container.Subscribe(s.broadcast)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Route("/tooltip", func(r chi.Router) {
		r.Get("/", s.handleFragment)
		r.Put("/", s.handleLoad)
		r.Delete("/", s.handleClear)
	})
	r.Patch("/config", s.handleConfig)
	r.Post("/snapshot", s.handleSnapshot)
	r.Get("/ws", s.hub.serveWS)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	s.router = r

	if err := s.Render(context.Background()); err != nil {
		logger.Warn("initial render failed", "error", err)
	}
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Render renders the current content and pushes the result to clients.
func (s *Server) Render(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked(ctx)
}

// Load applies doc and renders it.
func (s *Server) Load(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Apply(s.content)
	return s.renderLocked(ctx)
}

// Clear removes the model and renders the empty tooltip.
func (s *Server) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.Clear()
	return s.renderLocked(ctx)
}

// Configure validates the merged result of partial and, if usable,
// applies it and renders.
func (s *Server) Configure(ctx context.Context, partial tooltip.Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := s.content.Config().Merge(partial)
	if err != nil {
		return err
	}
	if err := merged.Validate(); err != nil {
		return configError(err)
	}
	s.content.SetConfig(partial)
	return s.renderLocked(ctx)
}

// HTML returns the current tooltip markup and its revision.
func (s *Server) HTML() (string, uint64, error) {
	frame, err := s.container.Snapshot()
	if err != nil {
		return "", 0, err
	}
	return frame.HTML, frame.Revision, nil
}

// Clients returns the number of connected live clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// Close disconnects live clients and stops listening for renders.
func (s *Server) Close() {
	s.unsubscribe()
	s.hub.close()
}

func (s *Server) renderLocked(ctx context.Context) error {
	info, err := s.recorder.Render(ctx, s.content, s.container)
	if err != nil {
		return err
	}
	s.logger.Debug("tooltip rendered",
		"format", info.Format, "rows", info.Rows, "cells", info.Cells,
		"revision", s.container.Revision())
	return nil
}

// broadcast runs inside Container.Replace, after the container unlocked.
func (s *Server) broadcast(u mount.Update) {
	frame, err := s.container.Frame(u)
	if err != nil {
		s.logger.Error("encode update", "revision", u.Revision, "error", err)
		return
	}
	s.hub.publish(frame)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func snapshotName(revision uint64) string {
	return fmt.Sprintf("tooltip-%d.html", revision)
}
