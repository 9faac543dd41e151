package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dshills/archon/internal/document"
	"github.com/dshills/archon/internal/providers"
	"github.com/dshills/archon/internal/review"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Details: []FieldError{{Message: err.Error()}}})
		return
	}

	req, err := DecodeReviewRequest(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Details: verr.Details})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation error", Details: []FieldError{{Message: err.Error()}}})
		return
	}

	input := document.Parse(req.ArchitectureText)
	if req.RepoURL != "" {
		s.logger.Info("repository analysis not available, reviewing document only", "repo_url", req.RepoURL)
	}

	// The pipeline outlives a disconnecting client.
	ctx := context.WithoutCancel(r.Context())
	rev, err := s.reviewer.Review(ctx, input, review.Options{Model: req.Model})
	if err != nil {
		s.logger.Error("review failed", "error", err)
		var apiErr *providers.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "API Error", Details: apiErr.Message})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate architecture review", Details: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, rev)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	rev, ok := s.reviews.FindByID(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Review not found"})
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reviews.FindAll())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
