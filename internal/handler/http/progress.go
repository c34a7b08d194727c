package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/middleware"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/internal/words"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// ProgressHandler tracks per-identity day completion.
type ProgressHandler struct {
	log             zerolog.Logger
	progressService *service.ProgressService
	words           *words.Store
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(log zerolog.Logger, progressService *service.ProgressService, words *words.Store) *ProgressHandler {
	return &ProgressHandler{
		log:             log,
		progressService: progressService,
		words:           words,
	}
}

// Get handles GET /api/v1/progress
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	days, err := h.progressService.Completed(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	pct, err := h.progressService.Percent(r.Context(), identity, h.words.TotalDays())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"completed_days": days,
		"percent":        pct,
	})
}

// MarkRequest is the body for POST /api/v1/progress.
type MarkRequest struct {
	Day int `json:"day"`
}

// Mark handles POST /api/v1/progress
func (h *ProgressHandler) Mark(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var req MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, errors.Validation("invalid request body"))
		return
	}

	if _, err := h.words.Day(req.Day); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.progressService.MarkDayComplete(r.Context(), identity, req.Day); err != nil {
		h.handleError(w, err)
		return
	}

	days, err := h.progressService.Completed(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"completed_days": days,
	})
}

// Unmark handles DELETE /api/v1/progress/{day}
func (h *ProgressHandler) Unmark(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		h.handleError(w, errors.Validation("day must be a number"))
		return
	}

	if err := h.progressService.UnmarkDay(r.Context(), identity, day); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *ProgressHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
