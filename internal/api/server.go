// Package api serves the persisted run history over a small read-only HTTP
// API, used by `linty serve`.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rwblickhan/linty/internal/lint"
	"github.com/rwblickhan/linty/internal/storage"
)

// Store is the minimal contract the API needs.
type Store interface {
	ListRuns(limit, offset int) ([]storage.RunRow, error)
	LoadRun(id string) (lint.Run, error)
	LoadLatestRun() (lint.Run, error)
	ListViolations(runID string, severity lint.Severity) ([]lint.Violation, error)
}

type Server struct {
	DB     Store
	Logger *slog.Logger

	// TokenBcrypt is the bcrypt hash of the access token. Empty disables
	// auth entirely (local use).
	TokenBcrypt string
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/runs", s.withAuth(s.handleListRuns))
	mux.HandleFunc("GET /api/v1/runs/latest", s.withAuth(s.handleGetLatest))
	mux.HandleFunc("GET /api/v1/runs/{id}", s.withAuth(s.handleGetRun))
	mux.HandleFunc("GET /api/v1/runs/{id}/violations", s.withAuth(s.handleListViolations))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := clamp(parseInt(q.Get("limit"), 20), 1, 200)
	offset := parseInt(q.Get("offset"), 0)

	rows, err := s.DB.ListRuns(limit, offset)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": rows, "limit": limit, "offset": offset,
	})
}

func (s *Server) handleGetLatest(w http.ResponseWriter, r *http.Request) {
	run, err := s.DB.LoadLatestRun()
	if err != nil {
		s.err(w, http.StatusNotFound, "no runs")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.DB.LoadRun(r.PathValue("id"))
	if err != nil {
		s.err(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleListViolations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sev := lint.Severity(r.URL.Query().Get("severity"))
	if sev != "" && !sev.Valid() {
		s.err(w, http.StatusBadRequest, "unknown severity")
		return
	}
	items, err := s.DB.ListViolations(id, sev)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": id, "items": items, "count": len(items),
	})
}

func (s *Server) err(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
