package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/colplot/pkg/buildinfo"
	"github.com/matzehuels/colplot/pkg/dataset"
	"github.com/matzehuels/colplot/pkg/errors"
	"github.com/matzehuels/colplot/pkg/gallery"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// createFigureRequest is the POST /api/figures body: pipeline options plus
// an optional display name.
type createFigureRequest struct {
	Name string `json:"name,omitempty"`
	pipeline.Options
}

// figureResponse is a gallery record plus its artifact URLs.
type figureResponse struct {
	*gallery.Record
	URLs map[string]string `json:"urls,omitempty"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// contentTypes maps artifact formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// artifactURLs builds the /figures/{id}.{format} URL per rendered format.
func artifactURLs(rec *gallery.Record) map[string]string {
	urls := make(map[string]string, len(rec.Formats))
	for _, format := range rec.Formats {
		urls[format] = fmt.Sprintf("/figures/%s.%s", rec.ID, format)
	}
	return urls
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dataset.BuiltinScenarios())
}

func (s *Server) handleCreateFigure(w http.ResponseWriter, r *http.Request) {
	var req createFigureRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	// Validate up front so the stored record carries canonical options and
	// bad requests fail before any pipeline work.
	opts := req.Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := gallery.NewRecord(req.Name, opts, result)
	if err := s.cfg.Store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, figureResponse{Record: rec, URLs: artifactURLs(rec)})
}

func (s *Server) handleListFigures(w http.ResponseWriter, r *http.Request) {
	recs, err := s.cfg.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		if n < len(recs) {
			recs = recs[:n]
		}
	}

	resp := make([]figureResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, figureResponse{Record: rec, URLs: artifactURLs(rec)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetFigure(w http.ResponseWriter, r *http.Request) {
	rec, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, figureResponse{Record: rec, URLs: artifactURLs(rec)})
}

func (s *Server) handleDeleteFigure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.cfg.Store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Evict cached artifacts first so a failed record delete stays listable.
	s.deleteArtifacts(r.Context(), rec)

	if err := s.cfg.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Re-run the stored request for just this format. Artifact bytes come
	// from the render cache on every request after the first.
	opts := rec.Request
	opts.Formats = []string{format}

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := result.Artifacts[format]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// deleteArtifacts evicts a record's cached artifact bytes.
func (s *Server) deleteArtifacts(ctx context.Context, rec *gallery.Record) {
	if s.cfg.Cache == nil || s.cfg.Runner.Keyer == nil || rec.DatasetHash == "" {
		return
	}
	for _, format := range rec.Formats {
		key := s.cfg.Runner.Keyer.ArtifactKey(rec.DatasetHash, rec.Request.ArtifactKeyOpts(format))
		_ = s.cfg.Cache.Delete(ctx, key)
	}
}

// =============================================================================
// Response Helpers
// =============================================================================

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a pipeline or storage error to an HTTP status and writes
// the structured error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.cfg.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// statusForError maps structured error codes to HTTP statuses: validation
// failures to 400, missing resources to 404, everything else to 500.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeFigureNotFound,
		errors.ErrCodeScenarioNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFigType,
		errors.ErrCodeInvalidStyle, errors.ErrCodeStyleCount,
		errors.ErrCodeShapeMismatch, errors.ErrCodeTooManyColumns,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDataset,
		errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
