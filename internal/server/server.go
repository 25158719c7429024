// Package server is the local development server: it serves the built
// site, exposes the preference API, renders the profile page live, and
// pushes reloads to connected browsers.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hzidan/blogsmith/internal/config"
	"github.com/hzidan/blogsmith/internal/profile"
	"github.com/hzidan/blogsmith/internal/site"
	"github.com/hzidan/blogsmith/internal/theme"
)

// Server serves the output directory plus the dev-only endpoints.
type Server struct {
	cfg     *config.Config
	prefs   *theme.Store
	builder *site.Builder
	hub     *Hub
	log     *zap.Logger

	router     chi.Router
	httpServer *http.Server
}

// New creates a dev server. prefs backs the preference API; builder is
// used for live profile rendering.
func New(cfg *config.Config, prefs *theme.Store, builder *site.Builder, log *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		prefs:   prefs,
		builder: builder,
		hub:     NewHub(log),
		log:     log,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/livereload", s.hub.ServeHTTP)

	r.Get("/api/preferences", s.handleGetPreferences)
	r.Put("/api/preferences", s.handlePutPreferences)

	if s.cfg.ProfileSource != "" {
		r.Get("/profile.html", s.handleProfile)
	}

	r.Handle("/*", http.FileServer(http.Dir(s.cfg.OutputDir)))

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the livereload hub so the watcher can broadcast rebuilds.
func (s *Server) Hub() *Hub { return s.hub }

type preferencePayload struct {
	Theme   string `json:"theme"`
	Palette string `json:"palette"`
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	pref := s.prefs.Preference()
	writeJSON(w, http.StatusOK, preferencePayload{
		Theme:   string(pref.Mode),
		Palette: pref.Palette,
	})
}

// handlePutPreferences updates the persisted preference. Unknown theme
// values and empty palettes are ignored, matching the store semantics,
// so the response always carries the effective state.
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var in preferencePayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.prefs.SetMode(theme.Mode(in.Theme))
	s.prefs.SetPalette(in.Palette)
	if err := s.prefs.Save(); err != nil {
		s.log.Error("saving preferences", zap.Error(err))
		http.Error(w, "could not persist preferences", http.StatusInternalServerError)
		return
	}

	pref := s.prefs.Preference()
	writeJSON(w, http.StatusOK, preferencePayload{
		Theme:   string(pref.Mode),
		Palette: pref.Palette,
	})
}

// handleProfile renders the profile page from the live source on every
// request. When the source cannot be fetched the response is a redirect
// to the error page with no partial content.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	doc, err := s.builder.LoadProfile(r.Context())
	if err != nil {
		s.log.Warn("profile source unavailable", zap.Error(err))
		http.Redirect(w, r, profile.ErrorPath, http.StatusFound)
		return
	}

	page, err := s.builder.RenderProfilePage(doc)
	if err != nil {
		s.log.Error("rendering profile", zap.Error(err))
		http.Redirect(w, r, profile.ErrorPath, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Start begins listening on the configured port and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Serve.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("dev server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown closes reload connections and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
