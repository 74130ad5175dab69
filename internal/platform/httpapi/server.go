// Package httpapi serves the leaderboard and settings as JSON over HTTP.
// Gameplay stays in the terminal; this is a read-mostly view of the store.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// Store is the persistence the API reads and writes.
type Store interface {
	BestScores() (map[memory.Difficulty]memory.BestScore, error)
	ScoreHistory(mode memory.Mode, limit int) ([]memory.ScoreEntry, error)
	TopTimes(d memory.Difficulty, limit int) ([]memory.ScoreEntry, error)
	Settings() (config.Settings, bool, error)
	SetSettings(s config.Settings) error
}

// Server bundles the router and its store.
type Server struct {
	r      *chi.Mux
	store  Store
	logger *log.Logger
}

// New constructs a Server, installs middleware and registers routes.
// A nil logger discards.
func New(store Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{r: chi.NewRouter(), store: store, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/best", s.handleBest)
		r.Get("/best/{difficulty}", s.handleTop)
		r.Get("/scores", s.handleScores)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// bestResponse is one row of GET /api/best.
type bestResponse struct {
	Difficulty memory.Difficulty `json:"difficulty"`
	Pairs      int               `json:"pairs"`
	Recorded   bool              `json:"recorded"`
	Seconds    int               `json:"time,omitempty"`
	Moves      int               `json:"moves,omitempty"`
	Display    string            `json:"display"`
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	best, err := s.store.BestScores()
	if err != nil {
		s.logger.Error("best scores", "err", err, "request_id", chimw.GetReqID(r.Context()))
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}

	out := make([]bestResponse, 0, len(memory.Difficulties()))
	for _, d := range memory.Difficulties() {
		b, ok := best[d]
		out = append(out, bestResponse{
			Difficulty: d,
			Pairs:      d.PairCount(),
			Recorded:   ok,
			Seconds:    b.Seconds,
			Moves:      b.Moves,
			Display:    memory.FormatBest(b, ok),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	d, err := memory.ParseDifficulty(chi.URLParam(r, "difficulty"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_difficulty")
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	entries, err := s.store.TopTimes(d, limit)
	if err != nil {
		s.logger.Error("top times", "err", err, "request_id", chimw.GetReqID(r.Context()))
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if entries == nil {
		entries = []memory.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	var mode memory.Mode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		m, err := memory.ParseMode(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_mode")
			return
		}
		mode = m
	}

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	entries, err := s.store.ScoreHistory(mode, limit)
	if err != nil {
		s.logger.Error("score history", "err", err, "request_id", chimw.GetReqID(r.Context()))
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if entries == nil {
		entries = []memory.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, _, err := s.store.Settings()
	if err != nil {
		s.logger.Warn("settings unreadable, serving defaults", "err", err)
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings config.Settings
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	settings = settings.WithDefaults()
	if _, err := memory.ParseDifficulty(settings.Difficulty); err != nil {
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
		return
	}

	if err := s.store.SetSettings(settings); err != nil {
		s.logger.Error("save settings", "err", err, "request_id", chimw.GetReqID(r.Context()))
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// parseLimit reads ?limit=, writing a 400 when it is not a positive integer.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(w, http.StatusBadRequest, "bad_limit")
		return 0, false
	}
	return min(n, maxLimit), true
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
