// Package http exposes the branching engine to a form player over a
// small JSON API. State lives with the caller (or in an optional
// response store); every endpoint is a pure function of its request.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldset/trailhead/internal/logging"
	"github.com/fieldset/trailhead/internal/presentation/graph"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/fieldset/trailhead/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the branching core consumed here.
type Engine interface {
	Questions() []domain.Question
	Question(id string) (domain.Question, error)
	Next(questionID string, answers domain.Answers) domain.NextRef
	PathFrom(startID string, answers domain.Answers) []domain.Question
	Progress(currentID string, answers domain.Answers) (int, int)
	ConditionSources(questionID string) []domain.Question
	BranchTargets(questionID string) []domain.Question
	ValuesFor(questionID string) []string
}

// Server wires the engine and an optional response store into a chi
// router.
type Server struct {
	engine Engine
	store  ports.ResponseStore
	logger *slog.Logger
}

type Option func(*Server)

// WithResponseStore enables the session endpoints.
func WithResponseStore(store ports.ResponseStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Get("/form", s.handleForm)
	r.Get("/form/graph", s.handleGraph)
	r.Get("/form/questions/{id}", s.handleQuestion)
	r.Get("/form/questions/{id}/values", s.handleValues)
	r.Get("/form/questions/{id}/sources", s.handleSources)
	r.Get("/form/questions/{id}/targets", s.handleTargets)
	r.Post("/next", s.handleNext)
	r.Post("/path", s.handlePath)
	r.Post("/progress", s.handleProgress)
	r.Handle("/metrics", promhttp.Handler())

	if s.store != nil {
		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/{id}", s.handleLoadSession)
		r.Put("/sessions/{id}", s.handleSaveSession)
		r.Delete("/sessions/{id}", s.handleDeleteSession)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"questions": s.engine.Questions(),
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(s.engine.Questions(), nil)))
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.engine.Question(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleValues(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.engine.Question(id); err != nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	values := s.engine.ValuesFor(id)
	if values == nil {
		values = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"values": values})
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.engine.Question(id); err != nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"questions": questionsOrEmpty(s.engine.ConditionSources(id)),
	})
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.engine.Question(id); err != nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"questions": questionsOrEmpty(s.engine.BranchTargets(id)),
	})
}

func questionsOrEmpty(qs []domain.Question) []domain.Question {
	if qs == nil {
		return []domain.Question{}
	}
	return qs
}

// NextRequest asks for the question after question_id under answers.
type NextRequest struct {
	QuestionID string         `json:"question_id"`
	Answers    domain.Answers `json:"answers"`
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	next := s.engine.Next(req.QuestionID, req.Answers)
	s.writeJSON(w, http.StatusOK, map[string]any{"next": next})
}

// PathRequest asks for the projected path, optionally from start_id.
type PathRequest struct {
	StartID string         `json:"start_id,omitempty"`
	Answers domain.Answers `json:"answers"`
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	path := s.engine.PathFrom(req.StartID, req.Answers)
	ids := make([]string, len(path))
	for i, q := range path {
		ids[i] = q.ID
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"path": path,
		"ids":  ids,
	})
}

// ProgressRequest asks where current_id sits on the projected path.
type ProgressRequest struct {
	CurrentID string         `json:"current_id"`
	Answers   domain.Answers `json:"answers"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	position, total := s.engine.Progress(req.CurrentID, req.Answers)

	percent := 0.0
	if position > 0 && total > 0 {
		percent = float64(position) / float64(total)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"position": position,
		"total":    total,
		"percent":  percent,
	})
}

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	var answers domain.Answers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), chi.URLParam(r, "id"), answers); err != nil {
		s.logger.Error("failed to save session", "error", err)
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoadSession(w http.ResponseWriter, r *http.Request) {
	answers, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load session", "error", err)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, answers)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.logger.Error("failed to delete session", "error", err)
		http.Error(w, "failed to delete session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list sessions", "error", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"sessions": ids})
}
