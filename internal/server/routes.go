package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/page"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

// handlePage renders a fresh instance of the page. The socket the browser
// opens afterwards mounts its own instance, so this one is discarded.
func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := page.New(name, page.Deps{
			Store:    s.deps.Store,
			Settings: s.deps.Settings,
			Logger:   s.logger,
		})
		if err != nil {
			s.logger.Error("mount page", zap.String("page", name), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer p.Close()

		var buf bytes.Buffer
		if err := s.deps.Renderer.Page(&buf, name, p.View()); err != nil {
			s.logger.Error("render page", zap.String("page", name), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

// handleContent returns one of the public collections. Memos and the review
// sit behind the passcode and are not served here.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	store := s.deps.Store
	var v any
	switch chi.URLParam(r, "collection") {
	case content.KindEpisodes:
		v = store.Episodes()
	case content.KindCredits:
		v = store.Credits()
	case content.KindLadders:
		v = store.Ladders()
	case content.KindCards:
		v = store.Cards()
	case content.KindHome:
		v = store.Home()
	default:
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type previewResponse struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	PreviewURL string `json:"preview_url"`
	ViewURL    string `json:"view_url"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		http.Error(w, "term is required", http.StatusBadRequest)
		return
	}
	if s.deps.Search == nil {
		http.Error(w, "preview lookup disabled", http.StatusServiceUnavailable)
		return
	}

	track, err := s.deps.Search.Search(r.Context(), term)
	switch {
	case errors.Is(err, preview.ErrNoResults):
		http.Error(w, "no preview found", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Warn("preview lookup failed",
			zap.String("term", term),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "preview lookup failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{
		Name:       track.Name,
		Artist:     track.Artist,
		PreviewURL: track.PreviewURL,
		ViewURL:    track.ViewURL,
	})
}

// localOrigin accepts same-host and loopback origins for websocket upgrades.
func localOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
