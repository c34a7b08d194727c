package http

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// PronunciationHandler scores recorded pronunciation attempts.
type PronunciationHandler struct {
	log      zerolog.Logger
	assessor service.Assessor
}

// NewPronunciationHandler creates a new pronunciation handler.
func NewPronunciationHandler(log zerolog.Logger, assessor service.Assessor) *PronunciationHandler {
	return &PronunciationHandler{
		log:      log,
		assessor: assessor,
	}
}

// Assess handles POST /api/v1/pronunciation/assess
//
// Request: multipart/form-data with an "audio_file" field and a "target"
// field holding the text the learner attempted.
// Response: { "score": 0.8, "message": "..." }
func (h *PronunciationHandler) Assess(w http.ResponseWriter, r *http.Request) {
	// 10 MB cap matches the short clips the recorder produces.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.handleError(w, errors.Validation("failed to parse multipart form"))
		return
	}

	target := r.FormValue("target")
	if target == "" {
		h.handleError(w, errors.Validation("target is required"))
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		h.handleError(w, errors.Validation("audio_file is required"))
		return
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		h.handleError(w, errors.Validation("failed to read audio file"))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	result := h.assessor.Assess(r.Context(), audioData, mimeType, target)

	response.JSON(w, http.StatusOK, result)
}

func (h *PronunciationHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
