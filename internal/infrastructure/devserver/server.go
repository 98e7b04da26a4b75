// Package devserver is a self-contained stand-in for the Lore-Book
// backend. It serves the same endpoint surface from in-memory sample
// data so the CLI and its tests can run without a real deployment.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/seeds"
)

// Server hosts the development backend.
type Server struct {
	store *Store
	log   zerolog.Logger
}

// NewServer creates a development server pre-populated with sample data.
func NewServer(log zerolog.Logger) *Server {
	s := &Server{
		store: NewStore(),
		log:   log.With().Str("component", "devserver").Logger(),
	}
	s.populate()
	return s
}

func (s *Server) populate() {
	s.store.Populate(seeds.Memories(), seeds.Locations(), seeds.Proposals(), seeds.Skills())
}

// Handler returns the HTTP handler serving the backend API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/hqi/search", s.handleSemanticSearch)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/recent", s.handleRecent)
			r.Get("/search/keyword", s.handleKeywordSearch)
			r.Post("/clusters", s.handleClusters)
			r.Get("/{id}", s.handleEntry)
		})

		r.Get("/locations", s.handleLocations)

		r.Route("/proposals", func(r chi.Router) {
			r.Get("/pending", s.handlePendingProposals)
			r.Post("/{id}/approve", s.handleApproveProposal)
			r.Post("/{id}/reject", s.handleRejectProposal)
		})

		r.Route("/entity-resolution", func(r chi.Router) {
			r.Get("/dashboard", s.handleDashboard)
			r.Post("/merge", s.handleMerge)
			r.Post("/conflicts/{id}/dismiss", s.handleDismissConflict)
			r.Post("/revert-merge/{id}", s.handleRevertMerge)
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", s.handleListSkills)
			r.Post("/", s.handleCreateSkill)
			r.Post("/extract", s.handleExtractSkills)
			r.Get("/{id}", s.handleGetSkill)
			r.Patch("/{id}", s.handleUpdateSkill)
			r.Delete("/{id}", s.handleDeleteSkill)
			r.Post("/{id}/xp", s.handleAddXP)
			r.Get("/{id}/progress", s.handleProgress)
		})

		r.Post("/dev/populate-dummy-data", s.handlePopulate)
	})

	return r
}

// ListenAndServe runs the server on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("development server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request served")
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		v = map[string]any{"success": true}
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn().Err(err).Msg("encoding response")
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]any{"success": false, "error": msg})
}

// failFor maps store errors onto HTTP statuses.
func (s *Server) failFor(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		s.fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflictState):
		s.fail(w, http.StatusConflict, err.Error())
	default:
		s.fail(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}

func (s *Server) handleSemanticSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := decode(r, &body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"results": s.store.SemanticSearch(body.Query, body.Limit),
	})
}

func (s *Server) handleKeywordSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	s.respond(w, http.StatusOK, map[string]any{
		"entries": s.store.KeywordSearch(query, limitParam(r, 20)),
	})
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.Entry(chi.URLParam(r, "id"))
	if err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EntryIDs []string `json:"entry_ids"`
	}
	if err := decode(r, &body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"clusters": s.store.Clusters(body.EntryIDs),
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"entries": s.store.Recent(limitParam(r, 10)),
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"locations": s.store.Locations()})
}

func (s *Server) handlePendingProposals(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"proposals": s.store.PendingProposals()})
}

func (s *Server) handleApproveProposal(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResolveProposal(chi.URLParam(r, "id"), entities.ProposalApproved, ""); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleRejectProposal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = decode(r, &body)
	if err := s.store.ResolveProposal(chi.URLParam(r, "id"), entities.ProposalRejected, body.Reason); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"dashboard": s.store.Dashboard()})
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req entities.MergeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SourceID == "" || req.TargetID == "" || req.Reason == "" {
		s.fail(w, http.StatusBadRequest, "source_id, target_id and reason are required")
		return
	}
	if err := s.store.Merge(req); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleDismissConflict(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DismissConflict(chi.URLParam(r, "id")); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleRevertMerge(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RevertMerge(chi.URLParam(r, "id")); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	opts := ports.SkillListOptions{
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
		Category:   r.URL.Query().Get("category"),
	}
	s.respond(w, http.StatusOK, map[string]any{"skills": s.store.Skills(opts)})
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := s.store.Skill(chi.URLParam(r, "id"))
	if err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"skill": skill})
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var skill entities.Skill
	if err := decode(r, &skill); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if skill.Name == "" {
		s.fail(w, http.StatusBadRequest, "name is required")
		return
	}
	s.respond(w, http.StatusCreated, map[string]any{"skill": s.store.CreateSkill(skill)})
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var skill entities.Skill
	if err := decode(r, &skill); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := s.store.UpdateSkill(chi.URLParam(r, "id"), skill)
	if err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"skill": updated})
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSkill(chi.URLParam(r, "id")); err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, nil)
}

func (s *Server) handleAddXP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	if err := decode(r, &body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Amount <= 0 {
		s.fail(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	skill, err := s.store.AddXP(chi.URLParam(r, "id"), body.Amount, body.Reason)
	if err != nil {
		s.failFor(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"skill": skill})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"progress": s.store.Progress(chi.URLParam(r, "id"), limitParam(r, 20)),
	})
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decode(r, &body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"skills": s.store.ExtractSkills(body.Text)})
}

func (s *Server) handlePopulate(w http.ResponseWriter, r *http.Request) {
	s.populate()
	s.log.Info().Msg("sample data repopulated")
	s.respond(w, http.StatusOK, nil)
}
