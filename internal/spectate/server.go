package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Server exposes the hub over HTTP.
type Server struct {
	r      *chi.Mux
	hub    *Hub
	logger *log.Logger
}

// NewServer registers the spectator routes:
//
//	GET /healthz
//	GET /sessions
//	GET /sessions/{id}/ws
//	GET /results/ws
func NewServer(hub *Hub, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{r: chi.NewRouter(), hub: hub, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)

	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.handleSessions)
		r.Get("/{id}/ws", s.handleWatch)
	})
	s.r.Get("/results/ws", func(w http.ResponseWriter, r *http.Request) {
		s.hub.ServeWS(w, r, ResultsChannel)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("spectator server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.hub.Sessions())
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == ResultsChannel {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reserved_session"})
		return
	}
	s.hub.ServeWS(w, r, id)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("cannot write response", "status", status, "error", err)
	}
}
