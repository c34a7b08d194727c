package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/kemetlearn/kemet_service/internal/client"
)

// tutorInstruction constrains the model's tone for language learners.
const tutorInstruction = "You are a friendly and encouraging English tutor. Your goal is to help the user practice their English conversation skills. Keep your responses helpful, concise, and engaging for a language learner. Ask questions to keep the conversation going."

// apologyReply is returned whenever the provider fails; the caller always
// receives a displayable bot message.
const apologyReply = "I'm sorry, I'm having trouble connecting right now. Please try again later."

// ChatMessage is one entry in the append-only conversation history.
type ChatMessage struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"` // "user" or "bot"
}

// ConversationProvider generates a reply from an ordered history and a
// system instruction.
type ConversationProvider interface {
	Converse(ctx context.Context, history []client.ChatTurn, systemInstruction string) (string, error)
}

// ConversationService sends the full chat history to a generative provider
// every turn and returns the reply.
type ConversationService struct {
	log      zerolog.Logger
	provider ConversationProvider
}

// NewConversationService creates a new conversation service.
func NewConversationService(log zerolog.Logger, provider ConversationProvider) *ConversationService {
	return &ConversationService{
		log:      log,
		provider: provider,
	}
}

// Exchange maps the history to provider turns and returns the bot reply.
// An optional restricted vocabulary list is folded into the system
// instruction. Failures yield the fixed apology string, never an error.
func (s *ConversationService) Exchange(ctx context.Context, history []ChatMessage, vocabulary []string) string {
	if s.provider == nil {
		s.log.Warn().Msg("No conversation provider configured")
		return apologyReply
	}

	turns := make([]client.ChatTurn, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Sender == "user" {
			role = "user"
		}
		turns = append(turns, client.ChatTurn{Role: role, Text: msg.Text})
	}

	instruction := tutorInstruction
	if len(vocabulary) > 0 {
		instruction = fmt.Sprintf("%s Prefer words from this vocabulary list where natural: %s.",
			tutorInstruction, strings.Join(vocabulary, ", "))
	}

	reply, err := s.provider.Converse(ctx, turns, instruction)
	if err != nil {
		s.log.Error().Err(err).Int("history_len", len(history)).Msg("Conversation provider failed")
		return apologyReply
	}
	if strings.TrimSpace(reply) == "" {
		return apologyReply
	}

	return reply
}

// GeminiConversationProvider adapts the Gemini client to the provider
// contract.
type GeminiConversationProvider struct {
	client *client.GeminiClient
}

// NewGeminiConversationProvider wraps a Gemini client.
func NewGeminiConversationProvider(c *client.GeminiClient) *GeminiConversationProvider {
	return &GeminiConversationProvider{client: c}
}

// Converse sends the history to Gemini.
func (p *GeminiConversationProvider) Converse(ctx context.Context, history []client.ChatTurn, systemInstruction string) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}
	return p.client.ChatWithHistory(ctx, history, systemInstruction)
}

// OpenAIConversationProvider adapts the OpenAI client to the provider
// contract.
type OpenAIConversationProvider struct {
	client *client.OpenAIClient
}

// NewOpenAIConversationProvider wraps an OpenAI client.
func NewOpenAIConversationProvider(c *client.OpenAIClient) *OpenAIConversationProvider {
	return &OpenAIConversationProvider{client: c}
}

// Converse sends the history to OpenAI with the instruction as a system
// message.
func (p *OpenAIConversationProvider) Converse(ctx context.Context, history []client.ChatTurn, systemInstruction string) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if systemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemInstruction,
		})
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleAssistant
		if turn.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Text,
		})
	}

	return p.client.ChatWithHistory(ctx, messages)
}
