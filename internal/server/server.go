// Package server serves the dashboard page and its JSON snapshot over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/SeasonOutlook/internal/dashboard"
	"github.com/Alias1177/SeasonOutlook/internal/display"
)

// Options configures a Server.
type Options struct {
	CORSOrigins []string
	// RefreshSchedule is a standard 5-field cron spec; empty disables scheduled refresh.
	RefreshSchedule string
}

// Server exposes a dashboard pipeline over HTTP.
type Server struct {
	pipeline *dashboard.Pipeline
	opts     Options
	router   chi.Router
	cron     *cron.Cron
	logger   zerolog.Logger
}

// New builds the router. Call Start to enable scheduled refreshes.
func New(p *dashboard.Pipeline, opts Options) *Server {
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	s := &Server{
		pipeline: p,
		opts:     opts,
		logger:   log.With().Str("component", "server").Logger(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/view", s.handleView)
	r.Post("/generate", s.handleGenerate)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/surface", s.handleSurface)
		r.Post("/generate", s.handleGenerate)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start registers the scheduled refresh, if configured.
func (s *Server) Start() error {
	if s.opts.RefreshSchedule == "" {
		return nil
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.opts.RefreshSchedule, func() {
		source := s.pipeline.Initialize(context.Background())
		s.logger.Info().Str("source", string(source)).Msg("Scheduled refresh complete")
	})
	if err != nil {
		return eris.Wrapf(err, "server: schedule refresh %q", s.opts.RefreshSchedule)
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", s.opts.RefreshSchedule).Msg("Scheduled refresh enabled")
	return nil
}

// Stop halts the scheduler and waits for a running refresh.
func (s *Server) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// handleIndex is a page load: refresh everything, then render.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// in-flight API calls are not aborted when the browser goes away
	s.pipeline.Initialize(context.WithoutCancel(r.Context()))
	s.renderPage(w)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	err := s.pipeline.Generate(context.WithoutCancel(r.Context()))

	if wantsJSON(r) {
		resp := s.snapshot()
		status := http.StatusOK
		if err != nil {
			resp.Error = "failed to generate prediction"
			status = http.StatusBadGateway
		}
		s.writeJSON(w, status, resp)
		return
	}
	http.Redirect(w, r, "/view", http.StatusSeeOther)
}

type surfaceResponse struct {
	Surface display.Snapshot `json:"surface"`
	State   dashboard.State  `json:"state"`
	Error   string           `json:"error,omitempty"`
}

// snapshot captures the surface with pending bar widths applied; a
// response is static, so deferred bars would never reach it.
func (s *Server) snapshot() surfaceResponse {
	s.pipeline.FlushBars()
	return surfaceResponse{
		Surface: s.pipeline.Surface().Snapshot(),
		State:   s.pipeline.Snapshot(),
	}
}

func (s *Server) handleSurface(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) renderPage(w http.ResponseWriter) {
	snap := s.snapshot()
	data := pageData{
		Surface: snap.Surface,
		Source:  string(snap.State.Source),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Error rendering page")
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}
