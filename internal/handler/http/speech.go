package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// SpeechHandler exposes the speech resolution chain and voice preferences.
type SpeechHandler struct {
	log           zerolog.Logger
	speechService *service.SpeechService
}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler(log zerolog.Logger, speechService *service.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		log:           log,
		speechService: speechService,
	}
}

// Resolve handles POST /api/v1/speech/resolve
//
// Request: { "text": "...", "audio_url": "..." }
// Response: the chosen audio source with the active rate and pitch.
func (h *SpeechHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req service.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, errors.Validation("invalid request body"))
		return
	}

	if req.Text == "" {
		h.handleError(w, errors.Validation("text is required"))
		return
	}

	response.JSON(w, http.StatusOK, h.speechService.Resolve(r.Context(), req))
}

// GetPrefs handles GET /api/v1/speech/prefs
func (h *SpeechHandler) GetPrefs(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.speechService.Prefs())
}

// PutPrefs handles PUT /api/v1/speech/prefs
func (h *SpeechHandler) PutPrefs(w http.ResponseWriter, r *http.Request) {
	var prefs service.VoicePrefs
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		h.handleError(w, errors.Validation("invalid request body"))
		return
	}

	applied, err := h.speechService.SetPrefs(r.Context(), prefs)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, applied)
}

func (h *SpeechHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
