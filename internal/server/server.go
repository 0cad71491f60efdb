package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/live"
	"github.com/ziadkadry99/portfolio/internal/page"
	"github.com/ziadkadry99/portfolio/internal/preview"
	"github.com/ziadkadry99/portfolio/internal/site"
)

const requestTimeout = 60 * time.Second

// Config holds server configuration.
type Config struct {
	Port          int
	FrameInterval time.Duration
	AllowAll      bool // allow all CORS and websocket origins (dev mode)
}

// Deps are the collaborators the routes serve from.
type Deps struct {
	Store    *content.Store
	Renderer *site.Renderer
	Search   preview.Searcher
	Settings page.Settings
	Logger   *zap.Logger
}

// Server serves the portfolio pages, their live sockets and the JSON API.
type Server struct {
	cfg        Config
	deps       Deps
	logger     *zap.Logger
	live       *live.Handler
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all routes registered.
func New(cfg Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger.Named("server"),
	}
	liveOpts := live.Options{
		Store:         deps.Store,
		Settings:      deps.Settings,
		Search:        deps.Search,
		Renderer:      deps.Renderer,
		Logger:        deps.Logger,
		FrameInterval: cfg.FrameInterval,
	}
	if !cfg.AllowAll {
		liveOpts.CheckOrigin = localOrigin
	}
	s.live = live.NewHandler(liveOpts)
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Sockets outlive any request timeout.
	r.Get("/ws/{page}", s.live.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/static/*", http.StripPrefix("/static/", site.Static()))

		r.Route("/api", func(r chi.Router) {
			r.Get("/content/{collection}", s.handleContent)
			r.Get("/preview", s.handlePreview)
		})

		r.Get("/", s.handlePage(page.Home))
		for _, name := range page.Names() {
			if name == page.Home {
				continue
			}
			r.Get("/"+name, s.handlePage(name))
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("portfolio server listening", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown ends live sessions and gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
