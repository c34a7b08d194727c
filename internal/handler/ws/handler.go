package ws

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/service"
)

// MessageType constants
const (
	TypePing  = "ping"
	TypePong  = "pong"
	TypeSpeak = "speak"
	TypeStop  = "stop"
	TypeEnded = "ended"
	TypeState = "state"
	TypeError = "error"
)

// Handler processes speech session messages. Clients drive the shared
// playback state machine: "speak" starts (or toggles) a stream, "stop"
// cancels it, "ended" reports that the client finished playing the audio.
// State transitions are broadcast separately by the hub.
type Handler struct {
	log           zerolog.Logger
	speechService *service.SpeechService
}

// NewHandler creates a new speech session handler.
func NewHandler(log zerolog.Logger, speechService *service.SpeechService) *Handler {
	return &Handler{
		log:           log,
		speechService: speechService,
	}
}

// Response represents a WebSocket response.
type Response struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Handle processes one incoming message and returns the direct reply, if
// any. State broadcasts happen out of band.
func (h *Handler) Handle(ctx context.Context, clientID string, msgType string, payload json.RawMessage) ([]byte, error) {
	h.log.Debug().
		Str("client_id", clientID).
		Str("type", msgType).
		Msg("Handling WebSocket message")

	switch msgType {
	case TypePing:
		return h.response(TypePong, map[string]string{"message": "pong"})

	case TypeSpeak:
		return h.handleSpeak(ctx, payload)

	case TypeStop:
		h.speechService.Stop()
		return nil, nil

	case TypeEnded:
		h.speechService.PlaybackDone()
		return nil, nil

	default:
		return h.errorResponse("unknown message type: " + msgType)
	}
}

// SpeakPayload asks for playback of Text, optionally from a known URL.
type SpeakPayload struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

func (h *Handler) handleSpeak(ctx context.Context, payload json.RawMessage) ([]byte, error) {
	var speak SpeakPayload
	if err := json.Unmarshal(payload, &speak); err != nil {
		return h.errorResponse("invalid speak payload")
	}
	if speak.Text == "" {
		return h.errorResponse("text is required")
	}

	res := h.speechService.Speak(ctx, service.ResolveRequest{
		Text:     speak.Text,
		AudioURL: speak.AudioURL,
	})
	if res == nil {
		// Toggled off or superseded; the state broadcast covers it.
		return nil, nil
	}

	return h.response(TypeSpeak, res)
}

func (h *Handler) response(msgType string, payload interface{}) ([]byte, error) {
	resp := Response{
		Type:    msgType,
		Payload: payload,
	}
	return json.Marshal(resp)
}

func (h *Handler) errorResponse(message string) ([]byte, error) {
	return h.response(TypeError, map[string]string{
		"error": message,
	})
}
