package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
	"github.com/sunnyyao/crocheo-blog/pkg/store"
)

// createPatternRequest is the body of POST /v1/patterns.
type createPatternRequest struct {
	Name string `json:"name"`
	pipeline.Options
}

// createPatternResponse wraps the saved document with its content hash.
type createPatternResponse struct {
	*store.Document
	PatternHash string `json:"pattern_hash"`
}

// instructionsResponse is the body of GET /v1/patterns/{id}/instructions.
type instructionsResponse struct {
	ID       string              `json:"id"`
	Preamble string              `json:"preamble"`
	Steps    []instructions.Step `json:"steps"`
	Text     string              `json:"text"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreatePattern(w http.ResponseWriter, r *http.Request) {
	var req createPatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidParams, err, "decode request body"))
		return
	}
	if req.Name == "" {
		req.Name = "untitled"
	}

	result, err := s.runner.Execute(r.Context(), req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := store.NewDocument(req.Name, result.Pattern)
	if err := s.store.Save(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPatternResponse{
		Document:    doc,
		PatternHash: result.PatternHash,
	})
}

func (s *Server) handleListPatterns(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"patterns": docs})
}

func (s *Server) handleGetPattern(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGetInstructions(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	steps, _, err := s.runner.StepsWithCacheInfo(r.Context(), doc.Pattern, pipeline.Options{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, instructionsResponse{
		ID:       doc.ID,
		Preamble: instructions.Preamble(),
		Steps:    steps,
		Text:     instructions.Render(doc.Pattern.Rounds),
	})
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:     []string{pipeline.FormatSVG},
		Palette:     q.Get("palette"),
		ColorMode:   q.Get("color_mode"),
		ShowAnchors: q.Get("anchors") == "true",
		Outline:     q.Get("outline") == "true",
	}

	artifacts, _, err := s.runner.RenderWithCacheInfo(r.Context(), doc.Pattern, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// writeError maps an error code onto an HTTP status and writes the standard
// error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidParams, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPitch, errors.ErrCodeInvalidPalette:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePatternNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStore:
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()))
	}

	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    string(code),
			"message": errors.UserMessage(err),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
