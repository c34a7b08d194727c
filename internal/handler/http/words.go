package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/words"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// WordsHandler serves the daily vocabulary corpus.
type WordsHandler struct {
	log   zerolog.Logger
	store *words.Store
}

// NewWordsHandler creates a new words handler.
func NewWordsHandler(log zerolog.Logger, store *words.Store) *WordsHandler {
	return &WordsHandler{
		log:   log,
		store: store,
	}
}

// List handles GET /api/v1/words
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"days":       h.store.All(),
		"total_days": h.store.TotalDays(),
	})
}

// Day handles GET /api/v1/words/{day}
func (h *WordsHandler) Day(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		h.handleError(w, errors.Validation("day must be a number"))
		return
	}

	set, err := h.store.Day(day)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, set)
}

func (h *WordsHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
