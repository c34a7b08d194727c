package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/pkg/response"
)

// ChatHandler serves the conversation practice endpoint.
type ChatHandler struct {
	log          zerolog.Logger
	conversation *service.ConversationService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(log zerolog.Logger, conversation *service.ConversationService) *ChatHandler {
	return &ChatHandler{
		log:          log,
		conversation: conversation,
	}
}

// ChatRequest carries the full conversation history; the last entry is the
// user's newest message. Vocabulary optionally restricts the tutor's word
// choice.
type ChatRequest struct {
	History    []service.ChatMessage `json:"history"`
	Vocabulary []string              `json:"vocabulary,omitempty"`
}

// ChatResponse is the tutor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Exchange handles POST /api/v1/chat
func (h *ChatHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, errors.Validation("invalid request body"))
		return
	}

	if len(req.History) == 0 {
		h.handleError(w, errors.Validation("history is required"))
		return
	}

	reply := h.conversation.Exchange(r.Context(), req.History, req.Vocabulary)

	response.JSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (h *ChatHandler) handleError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(w, appErr.HTTPStatus(), appErr)
		return
	}
	h.log.Error().Err(err).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
