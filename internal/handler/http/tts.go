package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/client"
)

// TTSHandler proxies the public translate TTS endpoint, adding the CORS
// header browsers need to play the stream. Responses are raw audio, not
// the JSON envelope.
type TTSHandler struct {
	log zerolog.Logger
	tts *client.GoogleTTSClient
}

// NewTTSHandler creates a new TTS proxy handler.
func NewTTSHandler(log zerolog.Logger, tts *client.GoogleTTSClient) *TTSHandler {
	return &TTSHandler{
		log: log,
		tts: tts,
	}
}

// Proxy handles GET /api/v1/tts?text=...&lang=...
func (h *TTSHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		http.Error(w, "Missing text parameter", http.StatusBadRequest)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}

	audio, err := h.tts.Synthesize(r.Context(), text, lang)
	if err != nil {
		h.log.Error().Err(err).Str("text", text).Msg("TTS upstream failed")
		http.Error(w, "Failed to fetch audio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
