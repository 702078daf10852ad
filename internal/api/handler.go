// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
	"github.com/remaimber-it/vocabdrill/internal/reading"
	"github.com/remaimber-it/vocabdrill/internal/service"
	"github.com/remaimber-it/vocabdrill/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	store     *store.SQLiteStore
	sessions  *service.SessionService
	annotator *reading.Annotator // nil disables reading lookup
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given dependencies. annotator may be
// nil, in which case words must be created with their reading.
func NewHandler(s *store.SQLiteStore, sessions *service.SessionService, annotator *reading.Annotator, logger *slog.Logger) *Handler {
	return &Handler{
		store:     s,
		sessions:  sessions,
		annotator: annotator,
		logger:    logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"word not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleSessionError maps session service errors onto status codes.
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, quiz.ErrInsufficientPool):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, quiz.ErrInvalidConfig),
		errors.Is(err, vocabulary.ErrInvalidItem),
		errors.Is(err, vocabulary.ErrDuplicateID):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// health reports liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
